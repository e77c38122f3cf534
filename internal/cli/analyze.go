package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/config"
	"github.com/yvinc/203-proj1/internal/core"
)

const topGenreCount = 5

var analyzeHead int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarise a playlist",
	Long: `Load a playlist, print the first rows of its track table, the artist
with the most tracks and the most common genres.`,
	Example: `  spotstat analyze
  spotstat analyze --head 10
  spotstat analyze -p spotify:playlist:37i9dQZF1DXcBWIGoYBM5M --json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeHead, "head", "n", 0, "number of rows to show (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

// analysisReport is the result of the analyze command.
type analysisReport struct {
	PlaylistID   string                `json:"playlist_id"`
	Name         string                `json:"name,omitempty"`
	Owner        string                `json:"owner,omitempty"`
	Tracks       int                   `json:"tracks"`
	Artists      int                   `json:"artists"`
	DurationMS   int                   `json:"duration_ms"`
	Head         []analysis.Row        `json:"head"`
	MostFrequent analysis.ArtistCount  `json:"most_frequent_artist"`
	TopGenres    []analysis.GenreCount `json:"top_genres"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	head := cfg.Output.Head
	if cmd.Flags().Changed("head") {
		head = analyzeHead
	}
	if head < 0 {
		return fmt.Errorf("--head must be non-negative, got %d", head)
	}

	info, tracks, err := loadPlaylist(cmd.Context(), true)
	if err != nil {
		return err
	}

	report, err := buildReport(info, tracks, head)
	if err != nil {
		return err
	}

	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), report)
	}
	writeReport(cmd.OutOrStdout(), report)
	return nil
}

func buildReport(info core.PlaylistInfo, tracks []core.Track, head int) (*analysisReport, error) {
	if head < 0 {
		return nil, fmt.Errorf("head must be non-negative, got %d", head)
	}

	top, err := analysis.MostFrequentArtist(tracks)
	if err != nil {
		return nil, err
	}

	rows := analysis.Rows(tracks)
	if head < len(rows) {
		rows = rows[:head]
	}

	genres := analysis.GenreTally(tracks)
	if len(genres) > topGenreCount {
		genres = genres[:topGenreCount]
	}

	total := 0
	for _, t := range tracks {
		total += t.AudioFeatures.DurationMS
	}

	return &analysisReport{
		PlaylistID:   info.ID,
		Name:         info.Name,
		Owner:        info.Owner,
		Tracks:       len(tracks),
		Artists:      len(analysis.ArtistTally(tracks)),
		DurationMS:   total,
		Head:         rows,
		MostFrequent: top,
		TopGenres:    genres,
	}, nil
}

func writeReport(w io.Writer, r *analysisReport) {
	title := "Playlist " + r.PlaylistID
	if r.Name != "" {
		title = r.Name
		if r.Owner != "" {
			title += " by " + r.Owner
		}
	}
	fmt.Fprintln(w, Section(title))
	fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("%s tracks by %s artists, %s total",
		humanize.Comma(int64(r.Tracks)), humanize.Comma(int64(r.Artists)), FormatDuration(r.DurationMS))))
	fmt.Fprintln(w)

	if len(r.Head) > 0 {
		table := NewTableWriter(w, "#", "TRACK", "ARTISTS", "DANCE", "ENERGY", "SPEECH", "LENGTH", "POP", "RAP", "DANCE", "COUNTRY")
		for i, row := range r.Head {
			table.Row(
				fmt.Sprintf("%d", i),
				TruncateString(row.TrackName, 32),
				TruncateString(strings.Join(row.ArtistNames, ", "), 32),
				FormatFloat(row.Danceability),
				FormatFloat(row.Energy),
				FormatFloat(row.Speechiness),
				FormatDuration(row.DurationMS),
				FormatFlag(row.IsPop),
				FormatFlag(row.IsRap),
				FormatFlag(row.IsDance),
				FormatFlag(row.IsCountry),
			)
		}
		table.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, mostFrequentSentence(r.PlaylistID, r.MostFrequent))

	if len(r.TopGenres) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, Section("Top genres"))
		for i, g := range r.TopGenres {
			fmt.Fprintf(w, "  %s  %s %s\n",
				LabelStyle.Render(fmt.Sprintf("%-4s", humanize.Ordinal(i+1))),
				g.Genre,
				LabelStyle.Render(fmt.Sprintf("(%d tracks)", g.Tracks)))
		}
	}
}

func mostFrequentSentence(playlistID string, top analysis.ArtistCount) string {
	name := HighlightStyle.Render(top.Artist.Name)
	if playlistID == config.Hot100PlaylistID {
		return fmt.Sprintf("%s has the most number of tracks on this week's Hot 100 at a whopping %d tracks!", name, top.Tracks)
	}
	return fmt.Sprintf("%s has the most number of tracks on this playlist with %d tracks.", name, top.Tracks)
}
