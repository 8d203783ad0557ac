package sportsdata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"nba-update-service/internal/domain"
	"nba-update-service/internal/providers"
)

// Config controls how the client reaches the GamesByDate endpoint.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches one day's games from the sportsdata.io scores API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a sportsdata client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGames retrieves the games scheduled for the given YYYY-MM-DD date.
// Errors are returned as the typed taxonomy in the providers package so the
// caller can map them to terminal invocation results.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.TransportError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.HTTPError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	var games []domain.Game
	if decodeErr := json.NewDecoder(resp.Body).Decode(&games); decodeErr != nil {
		return nil, &providers.DecodeError{Provider: providerName, Err: decodeErr}
	}

	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(date), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	return req, nil
}
