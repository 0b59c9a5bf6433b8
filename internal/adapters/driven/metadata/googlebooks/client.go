package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/jgold-code/shelfaware/internal/core/ports/driven"
	"github.com/jgold-code/shelfaware/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.VolumeSearcher = (*Client)(nil)

const (
	// DefaultBaseURL is the Google Books volumes endpoint.
	DefaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Google Books client.
type Config struct {
	// BaseURL overrides the volumes endpoint (useful for tests).
	BaseURL string

	// APIKey is optional; the volumes API works unauthenticated at a
	// lower quota.
	APIKey string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond bounds the outbound request rate. Zero means
	// the unauthenticated-tier default of 5 req/s with no burst.
	RequestsPerSecond float64
}

// Client provides volume lookups against the Google Books API.
// Requests are rate limited to stay under the unauthenticated quota.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	apiKey      string
}

// NewClient creates a new Google Books client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5.0
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
	}
}

// Search runs a volumes query and returns up to limit results.
// The query may use field-restricted syntax (intitle:, inauthor:).
func (c *Client) Search(ctx context.Context, query string, limit int) ([]driven.Volume, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", limit))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := c.baseURL + "?" + params.Encode()
	logger.Debug("searching Google Books: query=%q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var volResp volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&volResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	logger.Debug("Google Books results: query=%q count=%d", query, len(volResp.Items))

	volumes := make([]driven.Volume, 0, len(volResp.Items))
	for i := range volResp.Items {
		info := volResp.Items[i].VolumeInfo

		vol := driven.Volume{
			Title:   info.Title,
			Authors: info.Authors,
		}
		if info.ImageLinks != nil {
			vol.ImageLinks = driven.ImageLinks{
				Large:          info.ImageLinks.Large,
				Medium:         info.ImageLinks.Medium,
				Thumbnail:      info.ImageLinks.Thumbnail,
				SmallThumbnail: info.ImageLinks.SmallThumbnail,
			}
		}
		volumes = append(volumes, vol)
	}

	return volumes, nil
}
