// Package export writes analysis rows to CSV, JSON or SQLite files.
package export

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yvinc/203-proj1/internal/analysis"
)

// Format is an export file format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatSQLite}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or sqlite)", s)
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	if f == FormatSQLite {
		return ".db"
	}
	return "." + string(f)
}

// ToFile writes rows to path in the given format. CSV and JSON files are
// overwritten; SQLite databases have the playlist's rows replaced.
func ToFile(ctx context.Context, format Format, path, playlistID string, rows []analysis.Row) error {
	switch format {
	case FormatSQLite:
		return SQLite(ctx, path, playlistID, rows)
	case FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if format == FormatCSV {
		err = CSV(file, rows)
	} else {
		err = JSON(file, rows)
	}
	if err != nil {
		return err
	}
	return file.Close()
}
