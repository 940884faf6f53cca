// Package catalog implements the HTTP client for the third-party movie
// catalog (TMDB). It is read-only: paginated discover/search/upcoming/
// top-rated listings and per-movie details.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nfournier/cinelog/internal/models"
)

// DefaultBaseURL is the production TMDB v3 endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// DefaultLanguage is the fixed locale tag sent with every query.
const DefaultLanguage = "fr-FR"

// Client issues catalog queries. There is no retry policy: a failed call
// surfaces immediately as an error to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the catalog endpoint (tests point this at a local
// server).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLanguage overrides the locale tag.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a catalog client.
func New(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		language:   DefaultLanguage,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover lists movies ordered by sort. page is 1-based.
func (c *Client) Discover(ctx context.Context, page int, sort Sort) (*models.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("sort_by", sort.Param())

	result := &models.Page{}
	if err := c.get(ctx, "discover", "/discover/movie", q, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Search lists movies matching query. page is 1-based.
func (c *Client) Search(ctx context.Context, query string, page int) (*models.Page, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))

	result := &models.Page{}
	if err := c.get(ctx, "search", "/search/movie", q, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Upcoming lists movies releasing soon. page is 1-based.
func (c *Client) Upcoming(ctx context.Context, page int) (*models.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	result := &models.Page{}
	if err := c.get(ctx, "upcoming", "/movie/upcoming", q, result); err != nil {
		return nil, err
	}
	return result, nil
}

// TopRated lists the highest-rated movies. page is 1-based.
func (c *Client) TopRated(ctx context.Context, page int) (*models.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	result := &models.Page{}
	if err := c.get(ctx, "top_rated", "/movie/top_rated", q, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Details fetches one movie by ID.
func (c *Client) Details(ctx context.Context, movieID int64) (*models.Movie, error) {
	result := &models.Movie{}
	if err := c.get(ctx, "details", fmt.Sprintf("/movie/%d", movieID), url.Values{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// get issues one GET and maps the response per the catalog contract:
// 2xx decode, 401 unauthorized, 404 not found, 5xx server error, anything
// else invalid-response. Transport failures wrap as NetworkError and decode
// failures on 2xx as DecodingError.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values, v any) error {
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	start := time.Now()
	err := c.do(ctx, path, query, v)
	observeRequest(operation, err, time.Since(start))

	if err != nil {
		c.logger.Warn("catalog request failed", "operation", operation, "error", err)
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return &DecodingError{Err: err}
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return ErrServer
	default:
		return &InvalidResponseError{Code: resp.StatusCode}
	}
}
