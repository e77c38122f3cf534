package core

import "context"

// Batch limits imposed by the catalog API.
const (
	MaxAudioFeatureBatch = 100
	MaxArtistBatch       = 50
)

// PlaylistItem is a track stub as it appears in a playlist, before
// artist metadata and audio features are joined in.
type PlaylistItem struct {
	TrackID     string
	Name        string
	ArtistIDs   []string
	ArtistNames []string
}

// Catalog defines the lookups needed to assemble tracks from a playlist.
// Batch responses are not required to preserve request order.
type Catalog interface {
	// PlaylistItems returns every entry of the playlist in playlist order.
	PlaylistItems(ctx context.Context, playlistID string) ([]PlaylistItem, error)

	// AudioFeatures returns features for up to MaxAudioFeatureBatch tracks.
	// Unknown tracks may be returned as nil entries.
	AudioFeatures(ctx context.Context, trackIDs []string) ([]*AudioFeatures, error)

	// Artists returns metadata for up to MaxArtistBatch artists.
	Artists(ctx context.Context, artistIDs []string) ([]Artist, error)
}

// PlaylistInfo is playlist metadata without its entries.
type PlaylistInfo struct {
	ID    string
	Name  string
	Owner string
}

// PlaylistDescriber is implemented by catalogs that can look up playlist
// metadata.
type PlaylistDescriber interface {
	Playlist(ctx context.Context, playlistID string) (PlaylistInfo, error)
}
