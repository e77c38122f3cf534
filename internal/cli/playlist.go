package cli

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/yvinc/203-proj1/internal/config"
)

// ParsePlaylistID extracts a playlist ID from a bare ID, a spotify:playlist:
// URI or an open.spotify.com URL.
func ParsePlaylistID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty playlist reference")
	}

	var id string
	switch {
	case strings.HasPrefix(s, "spotify:"):
		parts := strings.Split(s, ":")
		if len(parts) < 3 || parts[len(parts)-2] != "playlist" {
			return "", fmt.Errorf("not a playlist URI: %s", s)
		}
		id = parts[len(parts)-1]

	case strings.Contains(s, "open.spotify.com"):
		if !strings.Contains(s, "://") {
			s = "https://" + s
		}
		u, err := url.Parse(s)
		if err != nil {
			return "", fmt.Errorf("invalid playlist URL: %w", err)
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i := 0; i < len(segments)-1; i++ {
			if segments[i] == "playlist" {
				id = segments[i+1]
				break
			}
		}
		if id == "" {
			return "", fmt.Errorf("not a playlist URL: %s", s)
		}

	default:
		id = s
	}

	if !isBase62(id) {
		return "", fmt.Errorf("invalid playlist ID: %q", id)
	}
	return id, nil
}

func isBase62(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// resolvePlaylistID picks the playlist from the flag, the interactive
// prompt or the config, in that order.
func resolvePlaylistID() (string, error) {
	if playlistArg != "" {
		return ParsePlaylistID(playlistArg)
	}

	current := cfg.Playlist.ID
	if current == "" {
		current = config.Hot100PlaylistID
	}

	if interactive && stdinIsTerminal() {
		ref, err := promptPlaylist(current)
		if err != nil {
			return "", err
		}
		if ref == "" {
			return config.Hot100PlaylistID, nil
		}
		return ParsePlaylistID(ref)
	}

	return ParsePlaylistID(current)
}

func promptPlaylist(current string) (string, error) {
	ref := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Playlist").
				Description("Spotify playlist ID, URI or URL. Leave empty for the Hot 100.").
				Value(&ref).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := ParsePlaylistID(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return strings.TrimSpace(ref), nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
