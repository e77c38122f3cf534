// Package playlist assembles Track values from a catalog.
package playlist

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yvinc/203-proj1/internal/config"
	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// Loader fetches a playlist and joins its tracks with artist metadata and
// audio features.
type Loader struct {
	catalog core.Catalog
	logger  *zap.Logger
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(catalog core.Catalog, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		catalog: catalog,
		logger:  logger.Named("playlist"),
	}
}

// LoadHot100 loads the Billboard Hot 100 playlist.
func (l *Loader) LoadHot100(ctx context.Context) ([]core.Track, error) {
	return l.Load(ctx, config.Hot100PlaylistID)
}

// Describe returns playlist metadata. Catalogs without a metadata lookup
// yield an info carrying only the ID.
func (l *Loader) Describe(ctx context.Context, playlistID string) (core.PlaylistInfo, error) {
	d, ok := l.catalog.(core.PlaylistDescriber)
	if !ok {
		return core.PlaylistInfo{ID: playlistID}, nil
	}

	info, err := d.Playlist(ctx, playlistID)
	if err != nil {
		return core.PlaylistInfo{}, fmt.Errorf("failed to fetch playlist %s: %w", playlistID, err)
	}
	if info.ID == "" {
		info.ID = playlistID
	}
	return info, nil
}

// Load returns one Track per available playlist entry, in playlist order.
func (l *Loader) Load(ctx context.Context, playlistID string) ([]core.Track, error) {
	start := time.Now()

	items, err := l.catalog.PlaylistItems(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist %s: %w", playlistID, err)
	}
	l.logger.Debug("fetched playlist items",
		zap.String("playlist", playlistID),
		zap.Int("items", len(items)),
		zap.Duration("elapsed", time.Since(start)))

	available := make([]core.PlaylistItem, 0, len(items))
	for i, item := range items {
		if item.TrackID == "" {
			l.logger.Warn("skipping unavailable playlist entry",
				zap.Int("position", i),
				zap.String("name", item.Name))
			continue
		}
		available = append(available, item)
	}

	tracks := make([]core.Track, 0, len(available))
	if len(available) == 0 {
		return tracks, nil
	}

	features, err := l.fetchAudioFeatures(ctx, uniqueTrackIDs(available))
	if err != nil {
		return nil, err
	}

	artists, err := l.fetchArtists(ctx, uniqueArtistIDs(available))
	if err != nil {
		return nil, err
	}

	for _, item := range available {
		track, err := join(item, features, artists)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	l.logger.Info("loaded playlist",
		zap.String("playlist", playlistID),
		zap.Int("tracks", len(tracks)),
		zap.Int("artists", len(artists)),
		zap.Duration("elapsed", time.Since(start)))

	return tracks, nil
}

func (l *Loader) fetchAudioFeatures(ctx context.Context, ids []string) (map[string]core.AudioFeatures, error) {
	batches := chunk(ids, core.MaxAudioFeatureBatch)
	result := make(map[string]core.AudioFeatures, len(ids))

	for i, batch := range batches {
		features, err := l.catalog.AudioFeatures(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch audio features: %w", err)
		}
		for _, f := range features {
			if f == nil || f.ID == "" {
				continue
			}
			result[f.ID] = *f
		}
		l.logger.Debug("fetched audio features",
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("size", len(batch)))
	}
	return result, nil
}

func (l *Loader) fetchArtists(ctx context.Context, ids []string) (map[string]core.Artist, error) {
	batches := chunk(ids, core.MaxArtistBatch)
	result := make(map[string]core.Artist, len(ids))

	for i, batch := range batches {
		artists, err := l.catalog.Artists(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch artists: %w", err)
		}
		for _, a := range artists {
			result[a.ID] = a
		}
		l.logger.Debug("fetched artists",
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("size", len(batch)))
	}
	return result, nil
}

// join builds a Track from a playlist stub and the looked-up records.
func join(item core.PlaylistItem, features map[string]core.AudioFeatures, artists map[string]core.Artist) (core.Track, error) {
	f, ok := features[item.TrackID]
	if !ok {
		return core.Track{}, fmt.Errorf("%w: track %s", apperrors.ErrMissingAudioFeatures, item.TrackID)
	}
	f.ID = item.TrackID

	trackArtists := make([]core.Artist, 0, len(item.ArtistIDs))
	for _, id := range item.ArtistIDs {
		a, ok := artists[id]
		if !ok {
			return core.Track{}, fmt.Errorf("%w: artist %s on track %s", apperrors.ErrMissingArtist, id, item.TrackID)
		}
		genres := make([]string, len(a.Genres))
		copy(genres, a.Genres)
		a.Genres = genres
		trackArtists = append(trackArtists, a)
	}

	return core.Track{
		ID:            item.TrackID,
		Name:          item.Name,
		Artists:       trackArtists,
		AudioFeatures: f,
	}, nil
}

func uniqueTrackIDs(items []core.PlaylistItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item.TrackID] {
			seen[item.TrackID] = true
			ids = append(ids, item.TrackID)
		}
	}
	return ids
}

func uniqueArtistIDs(items []core.PlaylistItem) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, item := range items {
		for _, id := range item.ArtistIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// chunk splits ids into consecutive slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}
