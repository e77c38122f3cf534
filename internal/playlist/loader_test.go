package playlist

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yvinc/203-proj1/internal/config"
	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// fakeCatalog serves canned data and answers batches in reverse order.
type fakeCatalog struct {
	items    map[string][]core.PlaylistItem
	features map[string]core.AudioFeatures
	artists  map[string]core.Artist

	featureCalls [][]string
	artistCalls  [][]string
	itemsErr     error
}

func (f *fakeCatalog) PlaylistItems(_ context.Context, playlistID string) ([]core.PlaylistItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	items, ok := f.items[playlistID]
	if !ok {
		return nil, apperrors.ErrPlaylistNotFound
	}
	return items, nil
}

func (f *fakeCatalog) AudioFeatures(_ context.Context, ids []string) ([]*core.AudioFeatures, error) {
	if len(ids) > core.MaxAudioFeatureBatch {
		return nil, fmt.Errorf("batch too large: %d", len(ids))
	}
	f.featureCalls = append(f.featureCalls, ids)
	result := make([]*core.AudioFeatures, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if af, ok := f.features[ids[i]]; ok {
			result = append(result, &af)
		} else {
			result = append(result, nil)
		}
	}
	return result, nil
}

func (f *fakeCatalog) Artists(_ context.Context, ids []string) ([]core.Artist, error) {
	if len(ids) > core.MaxArtistBatch {
		return nil, fmt.Errorf("batch too large: %d", len(ids))
	}
	f.artistCalls = append(f.artistCalls, ids)
	result := make([]core.Artist, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if a, ok := f.artists[ids[i]]; ok {
			result = append(result, a)
		}
	}
	return result, nil
}

func newFixture() *fakeCatalog {
	return &fakeCatalog{
		items: map[string][]core.PlaylistItem{
			"p1": {
				{TrackID: "t1", Name: "First", ArtistIDs: []string{"a1", "a2"}, ArtistNames: []string{"Ann", "Bob"}},
				{TrackID: "t2", Name: "Second", ArtistIDs: []string{"a2"}, ArtistNames: []string{"Bob"}},
				{TrackID: "t3", Name: "Third", ArtistIDs: []string{"a3"}, ArtistNames: []string{"Cat"}},
			},
			"empty": {},
		},
		features: map[string]core.AudioFeatures{
			"t1": {ID: "t1", Danceability: 0.1, Speechiness: 0.4},
			"t2": {ID: "t2", Danceability: 0.2, Speechiness: 0.5},
			"t3": {ID: "t3", Danceability: 0.3, Speechiness: 0.6},
		},
		artists: map[string]core.Artist{
			"a1": {ID: "a1", Name: "Ann", Genres: []string{"pop"}},
			"a2": {ID: "a2", Name: "Bob", Genres: []string{"rap", "trap"}},
			"a3": {ID: "a3", Name: "Cat", Genres: nil},
		},
	}
}

func TestLoadJoinsByID(t *testing.T) {
	catalog := newFixture()
	tracks, err := NewLoader(catalog, nil).Load(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	for i, want := range []string{"t1", "t2", "t3"} {
		assert.Equal(t, want, tracks[i].ID)
		assert.Equal(t, want, tracks[i].AudioFeatures.ID)
	}
	assert.Equal(t, "First", tracks[0].Name)
	assert.InDelta(t, 0.1, tracks[0].AudioFeatures.Danceability, 1e-9)
	assert.InDelta(t, 0.6, tracks[2].AudioFeatures.Speechiness, 1e-9)

	assert.Equal(t, []string{"a1", "a2"}, tracks[0].ArtistIDs())
	assert.Equal(t, []string{"rap", "trap"}, tracks[0].Artists[1].Genres)
	assert.Equal(t, []string{"Bob"}, tracks[1].ArtistNames())

	// Unique artists are requested once each, in first-seen order
	assert.Equal(t, [][]string{{"a1", "a2", "a3"}}, catalog.artistCalls)
	assert.Equal(t, [][]string{{"t1", "t2", "t3"}}, catalog.featureCalls)
}

func TestLoadCopiesGenres(t *testing.T) {
	catalog := newFixture()
	tracks, err := NewLoader(catalog, nil).Load(context.Background(), "p1")
	require.NoError(t, err)

	tracks[0].Artists[1].Genres[0] = "changed"
	assert.Equal(t, "rap", tracks[1].Artists[0].Genres[0])
	assert.Equal(t, "rap", catalog.artists["a2"].Genres[0])
}

func TestLoadEmptyPlaylist(t *testing.T) {
	catalog := newFixture()
	tracks, err := NewLoader(catalog, nil).Load(context.Background(), "empty")
	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
	assert.Empty(t, catalog.featureCalls)
	assert.Empty(t, catalog.artistCalls)
}

func TestLoadBatching(t *testing.T) {
	tests := []struct {
		name           string
		tracks         int
		wantFeatureReq int
		wantArtistReq  int
	}{
		{"single", 1, 1, 1},
		{"exactly one artist batch", 50, 1, 1},
		{"one over artist batch", 51, 1, 2},
		{"hot 100", 100, 1, 2},
		{"one over feature batch", 101, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{
				items:    map[string][]core.PlaylistItem{},
				features: map[string]core.AudioFeatures{},
				artists:  map[string]core.Artist{},
			}
			items := make([]core.PlaylistItem, tt.tracks)
			for i := range items {
				trackID := fmt.Sprintf("t%d", i)
				artistID := fmt.Sprintf("a%d", i)
				items[i] = core.PlaylistItem{TrackID: trackID, Name: trackID, ArtistIDs: []string{artistID}, ArtistNames: []string{artistID}}
				catalog.features[trackID] = core.AudioFeatures{ID: trackID, Energy: float64(i)}
				catalog.artists[artistID] = core.Artist{ID: artistID, Name: artistID}
			}
			catalog.items["big"] = items

			tracks, err := NewLoader(catalog, nil).Load(context.Background(), "big")
			require.NoError(t, err)
			require.Len(t, tracks, tt.tracks)
			assert.Len(t, catalog.featureCalls, tt.wantFeatureReq)
			assert.Len(t, catalog.artistCalls, tt.wantArtistReq)

			for i, track := range tracks {
				assert.Equal(t, fmt.Sprintf("t%d", i), track.ID)
				assert.InDelta(t, float64(i), track.AudioFeatures.Energy, 1e-9)
				assert.Equal(t, fmt.Sprintf("a%d", i), track.Artists[0].ID)
			}
		})
	}
}

func TestLoadMissingAudioFeatures(t *testing.T) {
	catalog := newFixture()
	delete(catalog.features, "t2")

	_, err := NewLoader(catalog, nil).Load(context.Background(), "p1")
	assert.ErrorIs(t, err, apperrors.ErrMissingAudioFeatures)
	assert.Contains(t, err.Error(), "t2")
}

func TestLoadMissingArtist(t *testing.T) {
	catalog := newFixture()
	delete(catalog.artists, "a3")

	_, err := NewLoader(catalog, nil).Load(context.Background(), "p1")
	assert.ErrorIs(t, err, apperrors.ErrMissingArtist)
	assert.Contains(t, err.Error(), "a3")
}

func TestLoadPropagatesCatalogErrors(t *testing.T) {
	catalog := newFixture()
	catalog.itemsErr = apperrors.ErrRateLimited

	_, err := NewLoader(catalog, nil).Load(context.Background(), "p1")
	assert.True(t, errors.Is(err, apperrors.ErrRateLimited))
}

func TestLoadSkipsUnavailableEntries(t *testing.T) {
	catalog := newFixture()
	catalog.items["p1"] = append([]core.PlaylistItem{{Name: "Local file"}}, catalog.items["p1"]...)

	obsCore, logs := observer.New(zapcore.WarnLevel)
	tracks, err := NewLoader(catalog, zap.New(obsCore)).Load(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, tracks, 3)

	entries := logs.FilterMessage("skipping unavailable playlist entry").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Local file", entries[0].ContextMap()["name"])
}

func TestLoadHot100(t *testing.T) {
	catalog := newFixture()
	catalog.items[config.Hot100PlaylistID] = catalog.items["p1"]

	tracks, err := NewLoader(catalog, nil).LoadHot100(context.Background())
	require.NoError(t, err)
	assert.Len(t, tracks, 3)
}

func TestChunk(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunk(ids, 2))
	assert.Equal(t, [][]string{{"a", "b", "c", "d", "e"}}, chunk(ids, 5))
	assert.Nil(t, chunk(nil, 50))
}

// describingCatalog adds a metadata lookup to fakeCatalog.
type describingCatalog struct {
	*fakeCatalog
	info core.PlaylistInfo
	err  error
}

func (d *describingCatalog) Playlist(_ context.Context, _ string) (core.PlaylistInfo, error) {
	return d.info, d.err
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()

	t.Run("without lookup", func(t *testing.T) {
		info, err := NewLoader(newFixture(), nil).Describe(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, core.PlaylistInfo{ID: "p1"}, info)
	})

	t.Run("with lookup", func(t *testing.T) {
		catalog := &describingCatalog{
			fakeCatalog: newFixture(),
			info:        core.PlaylistInfo{Name: "Hot 100", Owner: "Billboard"},
		}
		info, err := NewLoader(catalog, nil).Describe(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, core.PlaylistInfo{ID: "p1", Name: "Hot 100", Owner: "Billboard"}, info)
	})

	t.Run("lookup error", func(t *testing.T) {
		catalog := &describingCatalog{fakeCatalog: newFixture(), err: apperrors.ErrPlaylistNotFound}
		_, err := NewLoader(catalog, nil).Describe(ctx, "p1")
		assert.ErrorIs(t, err, apperrors.ErrPlaylistNotFound)
	})
}
