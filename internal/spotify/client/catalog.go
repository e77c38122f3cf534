package client

import (
	"context"
	"fmt"

	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// Catalog adapts Client to core.Catalog.
type Catalog struct {
	client *Client
}

// NewCatalog wraps a client as a catalog.
func NewCatalog(c *Client) *Catalog {
	return &Catalog{client: c}
}

// Playlist returns the playlist's name and owner.
func (c *Catalog) Playlist(ctx context.Context, playlistID string) (core.PlaylistInfo, error) {
	p, err := c.client.GetPlaylist(ctx, playlistID)
	if err != nil {
		if IsNotFoundError(err) {
			return core.PlaylistInfo{}, fmt.Errorf("%w: %s", apperrors.ErrPlaylistNotFound, playlistID)
		}
		return core.PlaylistInfo{}, err
	}
	return core.PlaylistInfo{
		ID:    p.ID,
		Name:  p.Name,
		Owner: p.Owner.DisplayName,
	}, nil
}

// PlaylistItems returns the playlist's track stubs in playlist order.
func (c *Catalog) PlaylistItems(ctx context.Context, playlistID string) ([]core.PlaylistItem, error) {
	items, err := c.client.GetPlaylistItems(ctx, playlistID)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrPlaylistNotFound, playlistID)
		}
		return nil, err
	}

	result := make([]core.PlaylistItem, 0, len(items))
	for _, item := range items {
		result = append(result, convertItem(item))
	}
	return result, nil
}

// AudioFeatures returns features for up to core.MaxAudioFeatureBatch tracks.
func (c *Catalog) AudioFeatures(ctx context.Context, trackIDs []string) ([]*core.AudioFeatures, error) {
	features, err := c.client.GetAudioFeatures(ctx, trackIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*core.AudioFeatures, len(features))
	for i, f := range features {
		result[i] = convertAudioFeatures(f)
	}
	return result, nil
}

// Artists returns metadata for up to core.MaxArtistBatch artists.
func (c *Catalog) Artists(ctx context.Context, artistIDs []string) ([]core.Artist, error) {
	artists, err := c.client.GetArtists(ctx, artistIDs)
	if err != nil {
		return nil, err
	}

	result := make([]core.Artist, 0, len(artists))
	for _, a := range artists {
		if a == nil {
			continue
		}
		result = append(result, convertArtist(a))
	}
	return result, nil
}

// convertItem converts a playlist item to a core stub. Unavailable
// entries produce a stub with an empty TrackID.
func convertItem(item PlaylistItem) core.PlaylistItem {
	if item.Track == nil || item.IsLocal || item.Track.IsLocal {
		stub := core.PlaylistItem{}
		if item.Track != nil {
			stub.Name = item.Track.Name
		}
		return stub
	}

	t := item.Track
	stub := core.PlaylistItem{
		TrackID:     t.ID,
		Name:        t.Name,
		ArtistIDs:   make([]string, len(t.Artists)),
		ArtistNames: make([]string, len(t.Artists)),
	}
	for i, a := range t.Artists {
		stub.ArtistIDs[i] = a.ID
		stub.ArtistNames[i] = a.Name
	}
	return stub
}

func convertAudioFeatures(f *AudioFeatures) *core.AudioFeatures {
	if f == nil {
		return nil
	}
	return &core.AudioFeatures{
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
		ID:               f.ID,
	}
}

func convertArtist(a *Artist) core.Artist {
	genres := make([]string, len(a.Genres))
	copy(genres, a.Genres)
	return core.Artist{
		ID:     a.ID,
		Name:   a.Name,
		Genres: genres,
	}
}

// Ensure Catalog implements core.Catalog and core.PlaylistDescriber
var (
	_ core.Catalog           = (*Catalog)(nil)
	_ core.PlaylistDescriber = (*Catalog)(nil)
)
