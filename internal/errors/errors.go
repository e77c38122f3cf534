package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotConfigured        = errors.New("spotify credentials not configured")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrRateLimited          = errors.New("rate limited")
	ErrNetworkError         = errors.New("network error")
	ErrTimeout              = errors.New("request timeout")
	ErrMissingArtist        = errors.New("artist missing from catalog response")
	ErrMissingAudioFeatures = errors.New("audio features missing from catalog response")
	ErrNoData               = errors.New("no data")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

// SpotstatError wraps an error with a user-friendly suggestion.
type SpotstatError struct {
	Err        error
	Suggestion string
}

func (e *SpotstatError) Error() string {
	return e.Err.Error()
}

func (e *SpotstatError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SpotstatError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var spErr *SpotstatError
	if errors.As(err, &spErr) && spErr.Suggestion != "" {
		return spErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNotConfigured) {
		return "Set spotify.client_id and spotify.client_secret in ~/.spotstatrc, a .env file, or SPOTSTAT_SPOTIFY_CLIENT_ID/SPOTSTAT_SPOTIFY_CLIENT_SECRET"
	}

	if errors.Is(err, ErrNotAuthenticated) || strings.Contains(errStr, "invalid_client") ||
		strings.Contains(errStr, "invalid access token") || strings.Contains(errStr, "401") {
		return "Check that your Spotify client ID and secret are correct"
	}

	if errors.Is(err, ErrPlaylistNotFound) || strings.Contains(errStr, "404") {
		return "Check the playlist ID; private playlists are not visible to client credentials"
	}

	if errors.Is(err, ErrMissingArtist) || errors.Is(err, ErrMissingAudioFeatures) {
		return "The catalog returned inconsistent data. Try again later"
	}

	if errors.Is(err, ErrNoData) {
		return "The playlist has no tracks to analyze"
	}

	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'spotstat config show' to inspect your configuration"
	}

	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "Spotify is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
