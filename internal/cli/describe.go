package cli

import (
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/analysis"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show summary statistics of the audio features",
	Long:  `Print count, mean, standard deviation, min, median and max for every numeric audio feature of the playlist.`,
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	_, tracks, err := loadTracks(cmd.Context())
	if err != nil {
		return err
	}

	stats, err := analysis.Describe(analysis.Rows(tracks))
	if err != nil {
		return err
	}

	if JSONOutput() {
		// JSON has no NaN
		for i := range stats {
			if math.IsNaN(stats[i].Std) {
				stats[i].Std = 0
			}
		}
		return printJSON(cmd.OutOrStdout(), stats)
	}
	writeStats(cmd.OutOrStdout(), stats)
	return nil
}

func writeStats(w io.Writer, stats []analysis.FeatureStats) {
	table := NewTableWriter(w, "FEATURE", "COUNT", "MEAN", "STD", "MIN", "MEDIAN", "MAX")
	for _, s := range stats {
		table.Row(
			s.Column,
			FormatFloat(float64(s.Count)),
			FormatFloat(s.Mean),
			FormatFloat(s.Std),
			FormatFloat(s.Min),
			FormatFloat(s.Median),
			FormatFloat(s.Max),
		)
	}
	table.Flush()
}
