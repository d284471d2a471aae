package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultAPIBase   = "https://api.themoviedb.org/3"
	defaultImageBase = "https://image.tmdb.org"
	defaultTimeout   = 15 * time.Second

	// posterSize is the rendition requested from the image host.
	posterSize = "w500"
)

// Client talks to a TMDB-compatible movie catalog API.
type Client struct {
	apiKey    string
	apiBase   string
	imageBase string
	http      *http.Client
	logger    zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithImageBase sets the host poster paths are resolved against.
func WithImageBase(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.imageBase = strings.TrimRight(base, "/")
		}
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client with the given API key and API base URL.
// If apiBase is empty, the public TMDB API is used.
func New(apiKey, apiBase string, opts ...Option) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	c := &Client{
		apiKey:    apiKey,
		apiBase:   strings.TrimRight(apiBase, "/"),
		imageBase: defaultImageBase,
		http:      &http.Client{Timeout: defaultTimeout},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NowPlaying returns the movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context) ([]Record, error) {
	return c.getResults(ctx, "movie/now_playing", nil)
}

// Search returns the movies matching a free-text query. Adult titles are
// always excluded.
func (c *Client) Search(ctx context.Context, query string) ([]Record, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	return c.getResults(ctx, "search/movie", params)
}

// PosterURL returns the image URL for a poster path on this client's image host.
func (c *Client) PosterURL(posterPath string) string {
	return PosterURL(c.imageBase, posterPath)
}

// FetchPoster downloads the poster image bytes for posterPath.
func (c *Client) FetchPoster(ctx context.Context, posterPath string) ([]byte, error) {
	u := c.PosterURL(posterPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: "poster", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: "poster", Err: err}
	}
	return data, nil
}

// getResults issues a GET against the API and decodes the "results" array.
func (c *Client) getResults(ctx context.Context, endpoint string, params url.Values) ([]Record, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(endpoint)+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog request")

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var page resultsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &ParseError{Endpoint: endpoint, Err: err}
	}
	return page.Results, nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns an *APIError for non-2xx responses.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
