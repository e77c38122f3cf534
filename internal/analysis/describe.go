package analysis

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// FeatureStats summarises one numeric column.
type FeatureStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

type numericColumn struct {
	name  string
	value func(Row) float64
}

var numericColumns = []numericColumn{
	{"danceability", func(r Row) float64 { return r.Danceability }},
	{"energy", func(r Row) float64 { return r.Energy }},
	{"key", func(r Row) float64 { return float64(r.Key) }},
	{"loudness", func(r Row) float64 { return r.Loudness }},
	{"mode", func(r Row) float64 { return float64(r.Mode) }},
	{"speechiness", func(r Row) float64 { return r.Speechiness }},
	{"acousticness", func(r Row) float64 { return r.Acousticness }},
	{"instrumentalness", func(r Row) float64 { return r.Instrumentalness }},
	{"liveness", func(r Row) float64 { return r.Liveness }},
	{"valence", func(r Row) float64 { return r.Valence }},
	{"tempo", func(r Row) float64 { return r.Tempo }},
	{"duration_ms", func(r Row) float64 { return float64(r.DurationMS) }},
	{"time_signature", func(r Row) float64 { return float64(r.TimeSignature) }},
}

// Describe computes count, mean, sample standard deviation, min, median
// and max for every numeric column. Std is NaN for a single row.
func Describe(rows []Row) ([]FeatureStats, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrNoData
	}

	stats := make([]FeatureStats, 0, len(numericColumns))
	values := make([]float64, len(rows))
	for _, col := range numericColumns {
		for i, r := range rows {
			values[i] = col.value(r)
		}
		stats = append(stats, summarize(col.name, values))
	}
	return stats, nil
}

func summarize(name string, values []float64) FeatureStats {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return FeatureStats{
		Column: name,
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    floats.Min(values),
		Median: median(sorted),
		Max:    floats.Max(values),
	}
}

// median of sorted values, averaging the middle pair for even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
