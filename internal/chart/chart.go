// Package chart renders scatter plots of track audio features.
package chart

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/yvinc/203-proj1/internal/analysis"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// Output file names used by Render.
const (
	DanceabilitySpeechinessFile = "danceability_speechiness"
	DanceabilityEnergyFile      = "danceability_energy"
)

var (
	rapColor    = color.RGBA{R: 0xe4, G: 0x57, B: 0x56, A: 0xff}
	notRapColor = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	pointColor  = color.RGBA{R: 0x1d, G: 0xb9, B: 0x54, A: 0xff}
)

// Size is the rendered image size in inches.
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize matches the [output] config defaults.
var DefaultSize = Size{Width: 6, Height: 4}

// SupportedFormats lists the accepted output extensions.
var SupportedFormats = []string{"png", "svg", "pdf"}

// DanceabilitySpeechiness plots danceability against speechiness, with rap
// and non-rap tracks in separate series.
func DanceabilitySpeechiness(rows []analysis.Row, path string, size Size) error {
	if len(rows) == 0 {
		return apperrors.ErrNoData
	}

	var rap, notRap plotter.XYs
	for _, r := range rows {
		pt := plotter.XY{X: r.Danceability, Y: r.Speechiness}
		if r.IsRap {
			rap = append(rap, pt)
		} else {
			notRap = append(notRap, pt)
		}
	}

	p := newPlot("Danceability vs. Speechiness", "Danceability", "Speechiness")
	p.Legend.Top = true
	if err := addSeries(p, "not rap", notRap, notRapColor); err != nil {
		return err
	}
	if err := addSeries(p, "rap", rap, rapColor); err != nil {
		return err
	}

	return save(p, path, size)
}

// DanceabilityEnergy plots danceability against energy.
func DanceabilityEnergy(rows []analysis.Row, path string, size Size) error {
	if len(rows) == 0 {
		return apperrors.ErrNoData
	}

	points := make(plotter.XYs, len(rows))
	for i, r := range rows {
		points[i] = plotter.XY{X: r.Danceability, Y: r.Energy}
	}

	p := newPlot("Danceability vs. Energy", "Danceability", "Energy")
	s, err := scatter(points, pointColor)
	if err != nil {
		return err
	}
	p.Add(s)

	return save(p, path, size)
}

// Render writes both charts into dir using the given format and returns
// the written paths.
func Render(rows []analysis.Row, dir, format string, size Size) ([]string, error) {
	paths := []string{
		filepath.Join(dir, DanceabilitySpeechinessFile+"."+format),
		filepath.Join(dir, DanceabilityEnergyFile+"."+format),
	}
	if err := DanceabilitySpeechiness(rows, paths[0], size); err != nil {
		return nil, err
	}
	if err := DanceabilityEnergy(rows, paths[1], size); err != nil {
		return nil, err
	}
	return paths, nil
}

func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

func addSeries(p *plot.Plot, label string, points plotter.XYs, c color.Color) error {
	if len(points) == 0 {
		return nil
	}
	s, err := scatter(points, c)
	if err != nil {
		return err
	}
	p.Add(s)
	p.Legend.Add(label, s)
	return nil
}

func scatter(points plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("invalid plot data: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	return s, nil
}

func save(p *plot.Plot, path string, size Size) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !isSupported(ext) {
		return fmt.Errorf("unsupported chart format %q (want one of %s)", ext, strings.Join(SupportedFormats, ", "))
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}

	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func isSupported(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
