package core

// Artist is a contributing artist as described by the catalog.
type Artist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

// AudioFeatures holds the numeric descriptors the catalog computes for a track.
type AudioFeatures struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Key              int     `json:"key"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
	DurationMS       int     `json:"duration_ms"`
	TimeSignature    int     `json:"time_signature"`
	ID               string  `json:"id"`
}

// Track is a playlist entry joined with its artists and audio features.
// AudioFeatures.ID always equals ID.
type Track struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Artists       []Artist      `json:"artists"`
	AudioFeatures AudioFeatures `json:"audio_features"`
}

// ArtistIDs returns the contributing artist IDs in credit order.
func (t Track) ArtistIDs() []string {
	ids := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		ids[i] = a.ID
	}
	return ids
}

// ArtistNames returns the contributing artist names in credit order.
func (t Track) ArtistNames() []string {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}
	return names
}
