package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"

	"github.com/yvinc/203-proj1/internal/config"
	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
	"github.com/yvinc/203-proj1/internal/playlist"
	"github.com/yvinc/203-proj1/internal/spotify/auth"
	"github.com/yvinc/203-proj1/internal/spotify/client"
	"github.com/yvinc/203-proj1/internal/spotify/sdk"
)

// newCatalog builds the catalog backend selected in the config.
func newCatalog(ctx context.Context) (core.Catalog, error) {
	if !cfg.Spotify.HasCredentials() {
		return nil, apperrors.ErrNotConfigured
	}

	switch cfg.Spotify.Backend {
	case "sdk":
		catalog, err := sdk.New(ctx, sdk.Config{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			Market:       cfg.Spotify.Market,
		})
		if err != nil {
			return nil, err
		}
		return catalog, nil
	default:
		creds := auth.NewCredentials(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
		c := client.New(creds)
		c.SetMarket(cfg.Spotify.Market)
		c.SetVerbose(true, logger.Named("spotify").Sugar().Debugf)
		return client.NewCatalog(c), nil
	}
}

// loadTracks resolves the playlist and loads its tracks, showing a spinner
// when writing to a terminal.
func loadTracks(ctx context.Context) (string, []core.Track, error) {
	info, tracks, err := loadPlaylist(ctx, false)
	if err != nil {
		return "", nil, err
	}
	return info.ID, tracks, nil
}

// loadPlaylist is loadTracks plus, when describe is set, the playlist's
// name and owner.
func loadPlaylist(ctx context.Context, describe bool) (core.PlaylistInfo, []core.Track, error) {
	playlistID, err := resolvePlaylistID()
	if err != nil {
		return core.PlaylistInfo{}, nil, err
	}

	catalog, err := newCatalog(ctx)
	if err != nil {
		return core.PlaylistInfo{}, nil, err
	}
	loader := playlist.NewLoader(catalog, logger)

	var (
		info   core.PlaylistInfo
		tracks []core.Track
	)
	load := func(ctx context.Context) error {
		var err error
		info, tracks, err = fetchPlaylist(ctx, loader, playlistID, describe)
		return err
	}

	if JSONOutput() || !stdoutIsTerminal() {
		err = load(ctx)
	} else {
		err = spinner.New().
			Title(fmt.Sprintf("Loading playlist %s...", playlistID)).
			Context(ctx).
			ActionWithErr(load).
			Run()
	}
	if err != nil {
		return core.PlaylistInfo{}, nil, err
	}

	return info, tracks, nil
}

func fetchPlaylist(ctx context.Context, loader *playlist.Loader, playlistID string, describe bool) (core.PlaylistInfo, []core.Track, error) {
	info := core.PlaylistInfo{ID: playlistID}
	if describe {
		var err error
		if info, err = loader.Describe(ctx, playlistID); err != nil {
			return core.PlaylistInfo{}, nil, err
		}
	}

	var (
		tracks []core.Track
		err    error
	)
	if playlistID == config.Hot100PlaylistID {
		tracks, err = loader.LoadHot100(ctx)
	} else {
		tracks, err = loader.Load(ctx, playlistID)
	}
	if err != nil {
		return core.PlaylistInfo{}, nil, err
	}
	return info, tracks, nil
}
