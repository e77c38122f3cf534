package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yvinc/203-proj1/internal/core"
)

func track(id string, artists ...core.Artist) core.Track {
	return core.Track{
		ID:            id,
		Name:          "Track " + id,
		Artists:       artists,
		AudioFeatures: core.AudioFeatures{ID: id},
	}
}

func artist(id string, genres ...string) core.Artist {
	return core.Artist{ID: id, Name: "Artist " + id, Genres: genres}
}

func TestGenres(t *testing.T) {
	tests := []struct {
		name  string
		track core.Track
		want  []string
	}{
		{
			name:  "no artists",
			track: track("t"),
			want:  []string{},
		},
		{
			name:  "artists without genres",
			track: track("t", artist("a"), artist("b")),
			want:  []string{},
		},
		{
			name:  "duplicates across artists",
			track: track("t", artist("a", "pop", "dance pop"), artist("b", "pop", "rap")),
			want:  []string{"dance pop", "pop", "rap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Genres(tt.track)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenresIgnoresOrdering(t *testing.T) {
	a := artist("a", "trap", "rap", "hip hop")
	b := artist("b", "pop", "rap")
	aShuffled := artist("a", "hip hop", "trap", "rap")
	bShuffled := artist("b", "rap", "pop")

	want := Genres(track("t", a, b))
	assert.Equal(t, want, Genres(track("t", b, a)))
	assert.Equal(t, want, Genres(track("t", bShuffled, aShuffled)))
	assert.Equal(t, []string{"hip hop", "pop", "rap", "trap"}, want)
}

func TestGenreContains(t *testing.T) {
	mixed := track("t", artist("a", "dance pop"), artist("b", "pop rap"))

	tests := []struct {
		name   string
		track  core.Track
		needle string
		want   bool
	}{
		{"dance", mixed, "dance", true},
		{"pop", mixed, "pop", true},
		{"hip hop", mixed, "hip hop", false},
		{"case insensitive needle", mixed, "POP", true},
		{"case insensitive genre", track("t", artist("a", "K-Pop")), "pop", true},
		{"substring not word", track("t", artist("a", "k-pop")), "pop", true},
		{"no genres", track("t", artist("a")), "pop", false},
		{"no artists", track("t"), "pop", false},
		{"country", track("t", artist("a", "contemporary country")), "country", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenreContains(tt.track, tt.needle))
		})
	}
}

func TestGenreTally(t *testing.T) {
	tracks := []core.Track{
		track("t1", artist("a", "pop", "dance pop"), artist("b", "pop")),
		track("t2", artist("c", "rap")),
		track("t3", artist("d", "rap", "pop")),
	}

	assert.Equal(t, []GenreCount{
		{Genre: "pop", Tracks: 2},
		{Genre: "rap", Tracks: 2},
		{Genre: "dance pop", Tracks: 1},
	}, GenreTally(tracks))
	assert.Empty(t, GenreTally(nil))
}
