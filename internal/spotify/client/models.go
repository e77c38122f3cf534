package client

// ExternalURLs contains external URLs for a resource.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Playlist represents a Spotify playlist without its items.
type Playlist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	SnapshotID   string       `json:"snapshot_id"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Owner        struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Tracks struct {
		Total int    `json:"total"`
		Href  string `json:"href"`
	} `json:"tracks"`
}

// PlaylistItemsPage is one page of the playlist items endpoint.
type PlaylistItemsPage struct {
	Items  []PlaylistItem `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Href   string         `json:"href"`
	Next   string         `json:"next"`
}

// PlaylistItem wraps a track in a playlist. Track is nil for entries
// that are no longer available.
type PlaylistItem struct {
	AddedAt string `json:"added_at"`
	IsLocal bool   `json:"is_local"`
	Track   *Track `json:"track"`
}

// Track represents a Spotify track.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	Type         string       `json:"type"`
	DurationMS   int          `json:"duration_ms"`
	Explicit     bool         `json:"explicit"`
	Popularity   int          `json:"popularity"`
	IsLocal      bool         `json:"is_local"`
	Artists      []Artist     `json:"artists"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Artist represents a Spotify artist. Genres is only populated by the
// artists endpoint.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	Type         string       `json:"type"`
	Genres       []string     `json:"genres"`
	Popularity   int          `json:"popularity"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// AudioFeatures is the audio analysis summary for a track.
type AudioFeatures struct {
	ID               string  `json:"id"`
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
}

// AudioFeaturesResponse is the response from the audio features endpoint.
// Unknown IDs come back as null entries.
type AudioFeaturesResponse struct {
	AudioFeatures []*AudioFeatures `json:"audio_features"`
}

// ArtistsResponse is the response from the several-artists endpoint.
type ArtistsResponse struct {
	Artists []*Artist `json:"artists"`
}
