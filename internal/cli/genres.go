package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/core"
)

var genreMatch string

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List genres or the tracks matching a genre",
	Long: `Without --match, list every genre of the playlist by number of tracks.
With --match, list the tracks whose artists have a genre containing the
given text, ignoring case. "pop" matches both "dance pop" and "k-pop".`,
	Example: `  spotstat genres
  spotstat genres --match country`,
	RunE: runGenres,
}

func init() {
	genresCmd.Flags().StringVarP(&genreMatch, "match", "m", "", "genre substring to match")
	rootCmd.AddCommand(genresCmd)
}

// genreMatchResult is a track matching a genre needle.
type genreMatchResult struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
	Genres  []string `json:"genres"`
}

func runGenres(cmd *cobra.Command, args []string) error {
	_, tracks, err := loadTracks(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if genreMatch == "" {
		tally := analysis.GenreTally(tracks)
		if JSONOutput() {
			return printJSON(out, tally)
		}
		writeGenreTally(out, tally)
		return nil
	}

	matches := matchGenre(tracks, genreMatch)
	if JSONOutput() {
		return printJSON(out, matches)
	}
	writeGenreMatches(out, genreMatch, matches, len(tracks))
	return nil
}

func matchGenre(tracks []core.Track, needle string) []genreMatchResult {
	matches := []genreMatchResult{}
	for _, t := range tracks {
		if !analysis.GenreContains(t, needle) {
			continue
		}
		matches = append(matches, genreMatchResult{
			ID:      t.ID,
			Name:    t.Name,
			Artists: t.ArtistNames(),
			Genres:  analysis.Genres(t),
		})
	}
	return matches
}

func writeGenreTally(w io.Writer, tally []analysis.GenreCount) {
	table := NewTableWriter(w, "RANK", "GENRE", "TRACKS")
	for i, g := range tally {
		table.Row(humanize.Ordinal(i+1), g.Genre, fmt.Sprintf("%d", g.Tracks))
	}
	table.Flush()
}

func writeGenreMatches(w io.Writer, needle string, matches []genreMatchResult, total int) {
	fmt.Fprintln(w, Section(fmt.Sprintf("%d of %d tracks match %q", len(matches), total, needle)))
	if len(matches) == 0 {
		return
	}
	table := NewTableWriter(w, "TRACK", "ARTISTS", "GENRES")
	for _, m := range matches {
		table.Row(
			TruncateString(m.Name, 32),
			TruncateString(strings.Join(m.Artists, ", "), 32),
			TruncateString(strings.Join(m.Genres, ", "), 48),
		)
	}
	table.Flush()
}
