// Package tracklist formats analysis rows as one line per track.
package tracklist

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/yvinc/203-proj1/internal/analysis"
)

// Formatter formats rows for output.
type Formatter struct {
	showEmoji    bool
	showFeatures bool
	template     *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter) error

// WithEmoji enables a genre emoji prefix.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) error {
		f.showEmoji = enabled
		return nil
	}
}

// WithFeatures appends danceability, energy and speechiness.
func WithFeatures(enabled bool) FormatterOption {
	return func(f *Formatter) error {
		f.showFeatures = enabled
		return nil
	}
}

// WithTemplate sets a custom text/template executed against each Row.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) error {
		if tmpl == "" {
			return nil
		}
		t, err := template.New("track").Funcs(template.FuncMap{
			"join": strings.Join,
		}).Parse(tmpl)
		if err != nil {
			return fmt.Errorf("invalid template: %w", err)
		}
		f.template = t
		return nil
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	f := &Formatter{}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Format formats the row at position i.
func (f *Formatter) Format(i int, r analysis.Row) (string, error) {
	if f.template != nil {
		return f.formatTemplate(i, r)
	}
	return f.formatLine(i, r), nil
}

// formatLine formats a row as a simple line.
func (f *Formatter) formatLine(i int, r analysis.Row) string {
	parts := []string{fmt.Sprintf("%3d.", i+1)}

	if f.showEmoji {
		parts = append(parts, genreEmoji(r))
	}

	parts = append(parts, fmt.Sprintf("%s - %s", strings.Join(r.ArtistNames, ", "), r.TrackName))

	if f.showFeatures {
		parts = append(parts, fmt.Sprintf("(dance %.2f, energy %.2f, speech %.2f)",
			r.Danceability, r.Energy, r.Speechiness))
	}

	return strings.Join(parts, " ")
}

type templateData struct {
	analysis.Row
	Position int
	Emoji    string
	Artist   string
}

// formatTemplate formats a row using the custom template.
func (f *Formatter) formatTemplate(i int, r analysis.Row) (string, error) {
	data := templateData{
		Row:      r,
		Position: i + 1,
		Emoji:    genreEmoji(r),
		Artist:   strings.Join(r.ArtistNames, ", "),
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template failed for track %s: %w", r.ID, err)
	}
	return buf.String(), nil
}

// genreEmoji returns an emoji for the row's most specific genre flag.
func genreEmoji(r analysis.Row) string {
	switch {
	case r.IsCountry:
		return "🤠"
	case r.IsRap:
		return "🎤"
	case r.IsDance:
		return "💃"
	case r.IsPop:
		return "🎵"
	default:
		return "🎧"
	}
}
