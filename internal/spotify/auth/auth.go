package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

const (
	// SpotifyTokenURL is the Spotify token endpoint.
	SpotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// Credentials is an app-level token source using the client credentials
// grant. Tokens are held in memory only and refreshed when they expire.
type Credentials struct {
	ClientID     string
	ClientSecret string

	// Endpoint overrides SpotifyTokenURL.
	Endpoint string

	httpClient *http.Client
	mu         sync.Mutex
	token      *Token
}

// NewCredentials creates a token source for the given app credentials.
func NewCredentials(clientID, clientSecret string) *Credentials {
	return &Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     SpotifyTokenURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns a valid token, requesting a new one if needed.
func (c *Credentials) Token(ctx context.Context) (*Token, error) {
	if c.ClientID == "" || c.ClientSecret == "" {
		return nil, apperrors.ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && !c.token.IsExpired() {
		return c.token, nil
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = SpotifyTokenURL
	}

	token, err := requestClientCredentials(ctx, c.httpClient, endpoint, c.ClientID, c.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	}
	c.token = token
	return token, nil
}

// AccessToken returns the bearer token string.
func (c *Credentials) AccessToken(ctx context.Context) (string, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
