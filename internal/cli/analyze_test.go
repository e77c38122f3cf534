package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/config"
	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

func testTracks() []core.Track {
	sza := core.Artist{ID: "a1", Name: "SZA", Genres: []string{"pop", "r&b", "rap"}}
	drake := core.Artist{ID: "a2", Name: "Drake", Genres: []string{"canadian hip hop", "rap"}}
	morgan := core.Artist{ID: "a3", Name: "Morgan Wallen", Genres: []string{"contemporary country"}}

	mk := func(id, name string, ms int, artists ...core.Artist) core.Track {
		return core.Track{
			ID:            id,
			Name:          name,
			Artists:       artists,
			AudioFeatures: core.AudioFeatures{ID: id, Danceability: 0.5, Energy: 0.6, DurationMS: ms},
		}
	}

	return []core.Track{
		mk("t1", "Kill Bill", 153947, sza),
		mk("t2", "Rich Flex", 239360, drake),
		mk("t3", "Snooze", 201800, sza),
		mk("t4", "Last Night", 163854, morgan),
		mk("t5", "Low", 181000, sza, drake),
	}
}

func TestBuildReport(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: "p1"}, testTracks(), 3)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}

	if report.Tracks != 5 || report.Artists != 3 {
		t.Errorf("Tracks = %d, Artists = %d", report.Tracks, report.Artists)
	}
	if len(report.Head) != 3 || report.Head[0].TrackName != "Kill Bill" {
		t.Errorf("Head = %+v", report.Head)
	}
	if report.MostFrequent.Artist.Name != "SZA" || report.MostFrequent.Tracks != 3 {
		t.Errorf("MostFrequent = %+v", report.MostFrequent)
	}
	if report.DurationMS != 153947+239360+201800+163854+181000 {
		t.Errorf("DurationMS = %d", report.DurationMS)
	}
	if len(report.TopGenres) != topGenreCount || report.TopGenres[0] != (analysis.GenreCount{Genre: "rap", Tracks: 4}) {
		t.Errorf("TopGenres = %+v", report.TopGenres)
	}
}

func TestBuildReportHeadLargerThanPlaylist(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: "p1"}, testTracks(), 50)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	if len(report.Head) != 5 {
		t.Errorf("len(Head) = %d, want 5", len(report.Head))
	}
}

func TestBuildReportNegativeHead(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: "p1"}, testTracks(), -1)
	if err == nil {
		t.Fatalf("buildReport() = %+v, want error", report)
	}
}

func TestBuildReportZeroHead(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: "p1"}, testTracks(), 0)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}
	if len(report.Head) != 0 {
		t.Errorf("len(Head) = %d, want 0", len(report.Head))
	}
}

func TestWriteReportWithoutName(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: "p1"}, testTracks(), 1)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}

	var buf bytes.Buffer
	writeReport(&buf, report)
	if !strings.Contains(buf.String(), "Playlist p1") {
		t.Errorf("output missing playlist id:\n%s", buf.String())
	}
}

func TestBuildReportEmpty(t *testing.T) {
	_, err := buildReport(core.PlaylistInfo{ID: "p1"}, []core.Track{}, 5)
	if !errors.Is(err, apperrors.ErrNoData) {
		t.Errorf("buildReport() error = %v, want ErrNoData", err)
	}
}

func TestWriteReport(t *testing.T) {
	report, err := buildReport(core.PlaylistInfo{ID: config.Hot100PlaylistID, Name: "Billboard Hot 100", Owner: "Billboard"}, testTracks(), 2)
	if err != nil {
		t.Fatalf("buildReport() error = %v", err)
	}

	var buf bytes.Buffer
	writeReport(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"Billboard Hot 100 by Billboard",
		"Kill Bill",
		"Rich Flex",
		"SZA has the most number of tracks on this week's Hot 100 at a whopping 3 tracks!",
		"Top genres",
		"1st",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Snooze") {
		t.Errorf("output should only include the head rows:\n%s", out)
	}
}

func TestMostFrequentSentenceOtherPlaylist(t *testing.T) {
	got := mostFrequentSentence("p1", analysis.ArtistCount{Artist: core.Artist{Name: "SZA"}, Tracks: 2})
	if !strings.Contains(got, "SZA has the most number of tracks on this playlist with 2 tracks.") {
		t.Errorf("mostFrequentSentence() = %q", got)
	}
}

func TestMatchGenre(t *testing.T) {
	matches := matchGenre(testTracks(), "COUNTRY")
	if len(matches) != 1 || matches[0].Name != "Last Night" {
		t.Fatalf("matchGenre() = %+v", matches)
	}

	matches = matchGenre(testTracks(), "hip hop")
	if len(matches) != 2 || matches[0].ID != "t2" || matches[1].ID != "t5" {
		t.Errorf("matchGenre() = %+v", matches)
	}

	if got := matchGenre(testTracks(), "polka"); got == nil || len(got) != 0 {
		t.Errorf("matchGenre() = %#v, want empty slice", got)
	}
}

func TestWriteStats(t *testing.T) {
	stats, err := analysis.Describe(analysis.Rows(testTracks()))
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	var buf bytes.Buffer
	writeStats(&buf, stats)
	out := buf.String()
	if !strings.Contains(out, "danceability") || !strings.Contains(out, "0.500") {
		t.Errorf("writeStats() output:\n%s", out)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"abc":          "***",
		"abcdef123456": "********3456",
	}
	for in, want := range tests {
		if got := maskSecret(in); got != want {
			t.Errorf("maskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
