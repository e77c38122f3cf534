// Package sdk implements core.Catalog on top of the zmb3/spotify client
// library, authenticated with the client credentials flow.
package sdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

const pageSize = 100

// Config holds the settings needed to build a catalog.
type Config struct {
	ClientID     string
	ClientSecret string
	Market       string

	// TokenURL and BaseURL override the Spotify endpoints. BaseURL must
	// end with a slash.
	TokenURL string
	BaseURL  string
}

// Catalog is a core.Catalog backed by the zmb3/spotify client.
type Catalog struct {
	client *spotify.Client
	market string
}

// New creates a catalog using client credentials.
func New(ctx context.Context, cfg Config) (*Catalog, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, apperrors.ErrNotConfigured
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	if cfg.TokenURL != "" {
		creds.TokenURL = cfg.TokenURL
	}

	opts := []spotify.ClientOption{spotify.WithRetry(true)}
	if cfg.BaseURL != "" {
		opts = append(opts, spotify.WithBaseURL(cfg.BaseURL))
	}

	return &Catalog{
		client: spotify.New(creds.Client(ctx), opts...),
		market: cfg.Market,
	}, nil
}

// Playlist returns the playlist's name and owner.
func (c *Catalog) Playlist(ctx context.Context, playlistID string) (core.PlaylistInfo, error) {
	var reqOpts []spotify.RequestOption
	if c.market != "" {
		reqOpts = append(reqOpts, spotify.Market(c.market))
	}

	p, err := c.client.GetPlaylist(ctx, spotify.ID(playlistID), reqOpts...)
	if err != nil {
		return core.PlaylistInfo{}, wrapError(err, playlistID)
	}
	return core.PlaylistInfo{
		ID:    string(p.ID),
		Name:  p.Name,
		Owner: p.Owner.DisplayName,
	}, nil
}

// PlaylistItems returns every entry of the playlist in playlist order.
func (c *Catalog) PlaylistItems(ctx context.Context, playlistID string) ([]core.PlaylistItem, error) {
	var result []core.PlaylistItem
	offset := 0

	for {
		reqOpts := []spotify.RequestOption{spotify.Limit(pageSize), spotify.Offset(offset)}
		if c.market != "" {
			reqOpts = append(reqOpts, spotify.Market(c.market))
		}

		page, err := c.client.GetPlaylistItems(ctx, spotify.ID(playlistID), reqOpts...)
		if err != nil {
			return nil, wrapError(err, playlistID)
		}

		for _, item := range page.Items {
			result = append(result, convertItem(item))
		}

		if page.Next == "" || len(page.Items) == 0 {
			break
		}
		offset += len(page.Items)
	}

	if result == nil {
		result = []core.PlaylistItem{}
	}
	return result, nil
}

// AudioFeatures returns features for up to core.MaxAudioFeatureBatch tracks.
func (c *Catalog) AudioFeatures(ctx context.Context, trackIDs []string) ([]*core.AudioFeatures, error) {
	if len(trackIDs) == 0 {
		return nil, nil
	}
	if len(trackIDs) > core.MaxAudioFeatureBatch {
		return nil, fmt.Errorf("too many track IDs: %d (max %d)", len(trackIDs), core.MaxAudioFeatureBatch)
	}

	features, err := c.client.GetAudioFeatures(ctx, toIDs(trackIDs)...)
	if err != nil {
		return nil, wrapError(err, "")
	}

	result := make([]*core.AudioFeatures, len(features))
	for i, f := range features {
		result[i] = convertAudioFeatures(f)
	}
	return result, nil
}

// Artists returns metadata for up to core.MaxArtistBatch artists.
func (c *Catalog) Artists(ctx context.Context, artistIDs []string) ([]core.Artist, error) {
	if len(artistIDs) == 0 {
		return nil, nil
	}
	if len(artistIDs) > core.MaxArtistBatch {
		return nil, fmt.Errorf("too many artist IDs: %d (max %d)", len(artistIDs), core.MaxArtistBatch)
	}

	artists, err := c.client.GetArtists(ctx, toIDs(artistIDs)...)
	if err != nil {
		return nil, wrapError(err, "")
	}

	result := make([]core.Artist, 0, len(artists))
	for _, a := range artists {
		if a == nil {
			continue
		}
		genres := make([]string, len(a.Genres))
		copy(genres, a.Genres)
		result = append(result, core.Artist{
			ID:     string(a.ID),
			Name:   a.Name,
			Genres: genres,
		})
	}
	return result, nil
}

func toIDs(ids []string) []spotify.ID {
	out := make([]spotify.ID, len(ids))
	for i, id := range ids {
		out[i] = spotify.ID(id)
	}
	return out
}

func convertItem(item spotify.PlaylistItem) core.PlaylistItem {
	t := item.Track.Track
	if t == nil || item.IsLocal {
		stub := core.PlaylistItem{}
		if t != nil {
			stub.Name = t.Name
		}
		return stub
	}

	stub := core.PlaylistItem{
		TrackID:     string(t.ID),
		Name:        t.Name,
		ArtistIDs:   make([]string, len(t.Artists)),
		ArtistNames: make([]string, len(t.Artists)),
	}
	for i, a := range t.Artists {
		stub.ArtistIDs[i] = string(a.ID)
		stub.ArtistNames[i] = a.Name
	}
	return stub
}

func convertAudioFeatures(f *spotify.AudioFeatures) *core.AudioFeatures {
	if f == nil {
		return nil
	}
	return &core.AudioFeatures{
		Danceability:     float64(f.Danceability),
		Energy:           float64(f.Energy),
		Key:              int(f.Key),
		Loudness:         float64(f.Loudness),
		Mode:             int(f.Mode),
		Speechiness:      float64(f.Speechiness),
		Acousticness:     float64(f.Acousticness),
		Instrumentalness: float64(f.Instrumentalness),
		Liveness:         float64(f.Liveness),
		Valence:          float64(f.Valence),
		Tempo:            float64(f.Tempo),
		DurationMS:       int(f.Duration),
		TimeSignature:    int(f.TimeSignature),
		ID:               string(f.ID),
	}
}

// wrapError maps library errors onto the shared sentinels.
func wrapError(err error, playlistID string) error {
	var apiErr spotify.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", apperrors.ErrNetworkError, err)
	}

	switch apiErr.Status {
	case http.StatusNotFound:
		if playlistID != "" {
			return fmt.Errorf("%w: %s", apperrors.ErrPlaylistNotFound, playlistID)
		}
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", apperrors.ErrRateLimited, err)
	}
	return err
}

// Ensure Catalog implements core.Catalog and core.PlaylistDescriber
var (
	_ core.Catalog           = (*Catalog)(nil)
	_ core.PlaylistDescriber = (*Catalog)(nil)
)
