package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

const (
	// BaseURL is the Spotify Web API base URL.
	BaseURL = "https://api.spotify.com/v1"

	// Retry configuration for transient errors
	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
	maxRetryAfter = 30 * time.Second
)

// TokenSource supplies bearer tokens for API requests.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is a Spotify API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	market     string
	retryWait  time.Duration
	verbose    bool
	logFunc    func(format string, args ...interface{})
}

// New creates a new Spotify client.
func New(tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    BaseURL,
		tokens:     tokens,
		retryWait:  baseRetryWait,
	}
}

// SetBaseURL points the client at a different API root.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// SetMarket sets the market used for track relinking.
func (c *Client) SetMarket(market string) {
	c.market = market
}

// SetVerbose enables verbose logging.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// Get performs a GET request to the Spotify API.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.request(ctx, "GET", path, result)
}

func (c *Client) request(ctx context.Context, method, path string, result interface{}) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	fullURL := c.baseURL + path
	c.log("[spotify] %s %s", method, fullURL)

	var lastErr error
	var wait time.Duration
	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Wait before retry (skip on first attempt)
		if attempt > 0 {
			if wait == 0 {
				wait = c.retryWait * time.Duration(1<<(attempt-1)) // exponential backoff
			}
			c.log("[spotify] retry %d/%d after %v (last error: %v)", attempt, maxRetries, wait, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait = 0
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %w", apperrors.ErrNetworkError, err)
			c.log("[spotify] network error: %v", err)
			continue // Retry on network error
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			c.log("[spotify] read error: %v", err)
			continue
		}

		c.log("[spotify] response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		if resp.StatusCode >= 400 {
			c.log("[spotify] response body: %s", string(respBody))
		}

		// Honour Retry-After on rate limiting
		if resp.StatusCode == http.StatusTooManyRequests {
			wait = retryAfter(resp.Header.Get("Retry-After"), c.retryWait)
			lastErr = fmt.Errorf("%w: %w", apperrors.ErrRateLimited, parseAPIError(resp.StatusCode, respBody))
			continue
		}

		// Retry on 5xx server errors
		if resp.StatusCode >= 500 {
			lastErr = parseAPIError(resp.StatusCode, respBody)
			c.log("[spotify] server error, will retry: %v", lastErr)
			continue
		}

		// Don't retry 4xx errors
		if resp.StatusCode >= 400 {
			return parseAPIError(resp.StatusCode, respBody)
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
		}

		return nil
	}

	return fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header string, fallback time.Duration) time.Duration {
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return fallback
	}
	d := time.Duration(secs) * time.Second
	if d > maxRetryAfter {
		return maxRetryAfter
	}
	if d == 0 {
		return fallback
	}
	return d
}

func parseAPIError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorInfo.Message != "" {
		if apiErr.ErrorInfo.Status == 0 {
			apiErr.ErrorInfo.Status = status
		}
		return &apiErr
	}
	return fmt.Errorf("API error: status %d, body: %s", status, string(body))
}

// APIError represents a Spotify API error response.
type APIError struct {
	ErrorInfo struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Spotify API error %d: %s", e.ErrorInfo.Status, e.ErrorInfo.Message)
}

// Is maps API statuses onto the shared error sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case apperrors.ErrNotAuthenticated:
		return e.ErrorInfo.Status == http.StatusUnauthorized
	case apperrors.ErrRateLimited:
		return e.ErrorInfo.Status == http.StatusTooManyRequests
	}
	return false
}

// IsNotFound returns true if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.ErrorInfo.Status == http.StatusNotFound
}

// IsNotFoundError checks if an error is a 404 API error.
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	if apperrors.As(err, &apiErr) {
		return apiErr.IsNotFound()
	}
	return false
}

// BuildURL builds a URL with query parameters.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}

	u, _ := url.Parse(path)
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
