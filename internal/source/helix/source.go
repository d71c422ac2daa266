// Package helix is a Twitch Helix API client. It serves as both the status
// source (batched liveness queries) and the user directory (login resolution).
package helix

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"stream_tracker/internal/domain"
)

// Config holds Helix client configuration.
type Config struct {
	BaseURL        string
	AuthURL        string
	ClientID       string
	ClientSecret   string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the Helix API with an app access token.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	authURL        string
	clientID       string
	clientSecret   string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger

	tokenMu        sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

// New creates a new Helix client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		authURL:        cfg.AuthURL,
		clientID:       cfg.ClientID,
		clientSecret:   cfg.ClientSecret,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "helix"),
	}
}

// Streams returns the currently-live streams among the given user IDs, keyed
// by user ID. IDs absent from the result are offline. The caller must keep
// len(ids) within the Helix per-query cap.
func (c *Client) Streams(ctx context.Context, ids []string) (map[string]domain.BroadcastMetadata, error) {
	if len(ids) == 0 {
		return map[string]domain.BroadcastMetadata{}, nil
	}

	params := url.Values{"type": {"live"}}
	for _, id := range ids {
		params.Add("user_id", id)
	}

	streams, err := get[streamData](ctx, c, "/streams", params)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.BroadcastMetadata, len(streams))
	for _, s := range streams {
		meta := domain.BroadcastMetadata{
			Title:       s.Title,
			GameID:      s.GameID,
			GameName:    s.GameName,
			ViewerCount: s.ViewerCount,
		}
		startedAt, err := time.Parse(time.RFC3339, s.StartedAt)
		if err != nil {
			c.logger.Warn("failed to parse stream start time",
				"user_id", s.UserID,
				"started_at", s.StartedAt,
			)
		} else {
			meta.StartedAt = startedAt
		}
		result[s.UserID] = meta
	}

	c.logger.Debug("fetched streams", "queried", len(ids), "live", len(result))
	return result, nil
}

// UserByLogin resolves a login name to a user profile. Returns
// domain.ErrUserNotFound when no such user exists.
func (c *Client) UserByLogin(ctx context.Context, login string) (*domain.Streamer, error) {
	params := url.Values{"login": {login}}

	users, err := get[userData](ctx, c, "/users", params)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("resolve %q: %w", login, domain.ErrUserNotFound)
	}

	u := users[0]
	return &domain.Streamer{
		ID:              u.ID,
		Login:           strings.ToLower(u.Login),
		DisplayName:     u.DisplayName,
		ProfileImageURL: u.ProfileImageURL,
	}, nil
}

// get performs a GET against the Helix API with retries.
func get[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	var data []T
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		data, err = doRequest[T](ctx, c, endpoint, params)
		if err == nil {
			return data, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"endpoint", endpoint,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func doRequest[T any](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return apiResp.Data, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
