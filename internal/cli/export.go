package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/analysis"
	"github.com/yvinc/203-proj1/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the track table to a file",
	Long: `Write one row per track to a CSV, JSON or SQLite file. SQLite exports
replace the playlist's previous rows and keep other playlists.`,
	Example: `  spotstat export
  spotstat export --format sqlite --output charts.db`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv, json or sqlite")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: <output.dir>/<playlist>.<ext>)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	playlistID, tracks, err := loadTracks(cmd.Context())
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, playlistID+format.Extension())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rows := analysis.Rows(tracks)
	if err := export.ToFile(cmd.Context(), format, path, playlistID, rows); err != nil {
		return err
	}

	var size uint64
	if info, err := os.Stat(path); err == nil {
		size = uint64(info.Size())
	}

	if JSONOutput() {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"status": "exported",
			"format": format,
			"path":   path,
			"rows":   len(rows),
			"bytes":  size,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s rows to %s (%s)\n",
		humanize.Comma(int64(len(rows))), path, humanize.Bytes(size))
	return nil
}
