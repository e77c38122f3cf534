package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/tracklist"
)

var (
	tracksEmoji    bool
	tracksFeatures bool
	tracksTemplate string
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List every track of the playlist",
	Long: `List the playlist one track per line.

A custom Go template is executed against each row. Row fields such as
.TrackName, .ArtistNames, .Genres, .Danceability and .IsRap are available,
plus .Position, .Artist (joined names) and .Emoji. The join function joins
a list: {{join .Genres ", "}}.`,
	Example: `  spotstat tracks --emoji
  spotstat tracks --template '{{.Position}}. {{.TrackName}} [{{join .Genres ", "}}]'`,
	RunE: runTracks,
}

func init() {
	tracksCmd.Flags().BoolVar(&tracksEmoji, "emoji", false, "prefix each track with a genre emoji")
	tracksCmd.Flags().BoolVar(&tracksFeatures, "features", false, "show danceability, energy and speechiness")
	tracksCmd.Flags().StringVarP(&tracksTemplate, "template", "t", "", "Go template for each line")
	rootCmd.AddCommand(tracksCmd)
}

func runTracks(cmd *cobra.Command, args []string) error {
	formatter, err := tracklist.NewFormatter(
		tracklist.WithEmoji(tracksEmoji),
		tracklist.WithFeatures(tracksFeatures),
		tracklist.WithTemplate(tracksTemplate),
	)
	if err != nil {
		return err
	}

	_, tracks, err := loadTracks(cmd.Context())
	if err != nil {
		return err
	}
	rows := analysis.Rows(tracks)

	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), rows)
	}

	for i, r := range rows {
		line, err := formatter.Format(i, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
