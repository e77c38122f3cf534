package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/browser"
	"github.com/yvinc/203-proj1/internal/chart"
)

var (
	plotOutDir string
	plotFormat string
	plotOpen   bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render scatter plots of the audio features",
	Long: `Render two scatter plots: danceability against speechiness, split into
rap and non-rap tracks, and danceability against energy.`,
	Example: `  spotstat plot
  spotstat plot --out-dir charts --format svg
  spotstat plot --open`,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutDir, "out-dir", "o", "", "output directory (default from config)")
	plotCmd.Flags().StringVarP(&plotFormat, "format", "f", "", "image format: png, svg or pdf (default from config)")
	plotCmd.Flags().BoolVar(&plotOpen, "open", false, "open the charts in the default viewer")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	dir := cfg.Output.Dir
	if plotOutDir != "" {
		dir = plotOutDir
	}
	format := cfg.Output.PlotFormat
	if plotFormat != "" {
		format = plotFormat
	}
	if !slices.Contains(chart.SupportedFormats, format) {
		return fmt.Errorf("unsupported plot format %q (want png, svg or pdf)", format)
	}

	_, tracks, err := loadTracks(cmd.Context())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	size := chart.Size{Width: cfg.Output.PlotWidth, Height: cfg.Output.PlotHeight}
	paths, err := chart.Render(analysis.Rows(tracks), dir, format, size)
	if err != nil {
		return err
	}

	if plotOpen {
		for _, p := range paths {
			if err := browser.Open(p); err != nil {
				logger.Warn("could not open chart", zap.String("path", p), zap.Error(err))
			}
		}
	}

	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"status": "rendered",
			"files":  paths,
		})
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
	}
	return nil
}
