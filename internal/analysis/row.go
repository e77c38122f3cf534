package analysis

import (
	"reflect"
	"strings"

	"github.com/yvinc/203-proj1/internal/core"
)

// Row is the tabular projection of a track. Field order is column order.
type Row struct {
	Danceability     float64  `csv:"danceability" json:"danceability" db:"danceability"`
	Energy           float64  `csv:"energy" json:"energy" db:"energy"`
	Key              int      `csv:"key" json:"key" db:"key"`
	Loudness         float64  `csv:"loudness" json:"loudness" db:"loudness"`
	Mode             int      `csv:"mode" json:"mode" db:"mode"`
	Speechiness      float64  `csv:"speechiness" json:"speechiness" db:"speechiness"`
	Acousticness     float64  `csv:"acousticness" json:"acousticness" db:"acousticness"`
	Instrumentalness float64  `csv:"instrumentalness" json:"instrumentalness" db:"instrumentalness"`
	Liveness         float64  `csv:"liveness" json:"liveness" db:"liveness"`
	Valence          float64  `csv:"valence" json:"valence" db:"valence"`
	Tempo            float64  `csv:"tempo" json:"tempo" db:"tempo"`
	DurationMS       int      `csv:"duration_ms" json:"duration_ms" db:"duration_ms"`
	TimeSignature    int      `csv:"time_signature" json:"time_signature" db:"time_signature"`
	ID               string   `csv:"id" json:"id" db:"id"`
	TrackName        string   `csv:"track_name" json:"track_name" db:"track_name"`
	ArtistIDs        []string `csv:"artist_ids" json:"artist_ids" db:"artist_ids"`
	ArtistNames      []string `csv:"artist_names" json:"artist_names" db:"artist_names"`
	Genres           []string `csv:"genres" json:"genres" db:"genres"`
	IsPop            bool     `csv:"is_pop" json:"is_pop" db:"is_pop"`
	IsRap            bool     `csv:"is_rap" json:"is_rap" db:"is_rap"`
	IsDance          bool     `csv:"is_dance" json:"is_dance" db:"is_dance"`
	IsCountry        bool     `csv:"is_country" json:"is_country" db:"is_country"`
}

// Genre needles behind the Row flags.
const (
	NeedlePop     = "pop"
	NeedleRap     = "rap"
	NeedleDance   = "dance"
	NeedleCountry = "country"
)

// NewRow projects a track onto a row.
func NewRow(t core.Track) Row {
	f := t.AudioFeatures
	return Row{
		Danceability:     f.Danceability,
		Energy:           f.Energy,
		Key:              f.Key,
		Loudness:         f.Loudness,
		Mode:             f.Mode,
		Speechiness:      f.Speechiness,
		Acousticness:     f.Acousticness,
		Instrumentalness: f.Instrumentalness,
		Liveness:         f.Liveness,
		Valence:          f.Valence,
		Tempo:            f.Tempo,
		DurationMS:       f.DurationMS,
		TimeSignature:    f.TimeSignature,
		ID:               t.ID,
		TrackName:        t.Name,
		ArtistIDs:        t.ArtistIDs(),
		ArtistNames:      t.ArtistNames(),
		Genres:           Genres(t),
		IsPop:            GenreContains(t, NeedlePop),
		IsRap:            GenreContains(t, NeedleRap),
		IsDance:          GenreContains(t, NeedleDance),
		IsCountry:        GenreContains(t, NeedleCountry),
	}
}

// Rows projects tracks onto rows, one per track in input order.
func Rows(tracks []core.Track) []Row {
	rows := make([]Row, len(tracks))
	for i, t := range tracks {
		rows[i] = NewRow(t)
	}
	return rows
}

// Columns returns the column names of Row in order.
func Columns() []string {
	return TagNames(reflect.TypeOf(Row{}), "csv")
}

// TagNames returns the tag values of a struct type's exported fields,
// skipping fields tagged "-".
func TagNames(t reflect.Type, key string) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}
	return names
}
