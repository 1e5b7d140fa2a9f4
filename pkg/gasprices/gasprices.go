// Package gasprices provides types and a client for the international
// gas price API, which returns crowd-sourced per-station fuel prices
// for a city, postal code or free-text location.
package gasprices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 30 * time.Second

	pricesPath = "/api/gas-prices"
	healthPath = "/api/health"
)

// APIError is an application-level failure: the server answered with a
// well-formed envelope and success set to false. Message carries the
// envelope's error field and may be empty.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "gas price API reported failure"
	}
	return e.Message
}

// Client fetches gas price data from the API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL, a nil logger discards log output.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logger,
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// Fetch performs a single price lookup. It returns ErrEmptyLocation
// before any network I/O when the query has no location, an *APIError
// when the server reports success=false, and a wrapped transport or
// decode error otherwise.
func (c *Client) Fetch(ctx context.Context, query Query) (*Result, error) {
	values, err := query.Values()
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s?%s", c.baseURL, pricesPath, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	c.log.Debug("fetching gas prices", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching data: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	// The server returns its JSON envelope with non-2xx status codes
	// too, so the body is decoded before the status is considered.
	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	if !result.Success {
		return nil, &APIError{Message: result.Error}
	}

	return &result, nil
}

// Health checks the API server's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	url := c.baseURL + healthPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	return &status, nil
}
