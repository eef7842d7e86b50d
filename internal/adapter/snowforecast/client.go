// Package snowforecast fetches resort forecast pages over HTTP.
package snowforecast

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// userAgent matches a plain browser; the forecast site serves a reduced page
// to unknown agents.
const userAgent = "Mozilla/5.0"

// Client retrieves a forecast page with a fixed timeout.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a forecast page client.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch retrieves the forecast page body. Non-200 responses are errors.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast page error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast page: %w", err)
	}

	c.logger.Debug("forecast page fetched", "url", c.url, "bytes", len(body))
	return body, nil
}
