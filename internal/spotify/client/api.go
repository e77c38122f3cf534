package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yvinc/203-proj1/internal/core"
)

// playlistPageSize is the maximum page size of the playlist items endpoint.
const playlistPageSize = 100

// GetPlaylist returns playlist metadata.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	params := map[string]string{
		"fields": "id,name,description,snapshot_id,external_urls,owner(id,display_name),tracks(total,href)",
	}
	if c.market != "" {
		params["market"] = c.market
	}

	var playlist Playlist
	if err := c.Get(ctx, BuildURL("/playlists/"+url.PathEscape(playlistID), params), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylistItems returns every item of a playlist, following pagination.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	var items []PlaylistItem
	offset := 0

	for {
		params := map[string]string{
			"limit":  strconv.Itoa(playlistPageSize),
			"offset": strconv.Itoa(offset),
		}
		if c.market != "" {
			params["market"] = c.market
		}

		var page PlaylistItemsPage
		path := BuildURL("/playlists/"+url.PathEscape(playlistID)+"/tracks", params)
		if err := c.Get(ctx, path, &page); err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		c.log("[spotify] playlist %s: fetched %d/%d items", playlistID, len(items), page.Total)

		if page.Next == "" || len(page.Items) == 0 {
			break
		}
		offset += len(page.Items)
	}

	return items, nil
}

// GetAudioFeatures returns audio features for up to 100 tracks. Entries
// for unknown tracks are nil.
func (c *Client) GetAudioFeatures(ctx context.Context, trackIDs []string) ([]*AudioFeatures, error) {
	if len(trackIDs) == 0 {
		return nil, nil
	}
	if len(trackIDs) > core.MaxAudioFeatureBatch {
		return nil, fmt.Errorf("too many track IDs: %d (max %d)", len(trackIDs), core.MaxAudioFeatureBatch)
	}

	var resp AudioFeaturesResponse
	path := BuildURL("/audio-features", map[string]string{"ids": strings.Join(trackIDs, ",")})
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.AudioFeatures, nil
}

// GetArtists returns metadata for up to 50 artists.
func (c *Client) GetArtists(ctx context.Context, artistIDs []string) ([]*Artist, error) {
	if len(artistIDs) == 0 {
		return nil, nil
	}
	if len(artistIDs) > core.MaxArtistBatch {
		return nil, fmt.Errorf("too many artist IDs: %d (max %d)", len(artistIDs), core.MaxArtistBatch)
	}

	var resp ArtistsResponse
	path := BuildURL("/artists", map[string]string{"ids": strings.Join(artistIDs, ",")})
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Artists, nil
}
