// Package client provides the Place API client: it fetches the level of a
// single canvas pixel over the GraphQL endpoint and absorbs transient
// failures through fixed-interval retry.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

// Prometheus metrics for Place API requests.
var (
	placeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "place_requests_total",
		Help: "Total Place API requests by status",
	}, []string{"status"})

	placeRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "place_request_duration_seconds",
		Help:    "Place API request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	placeFetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_fetch_failures_total",
		Help: "Total failed pixel fetch attempts (network, HTTP or decode)",
	})
)

// failureLogInterval controls how often repeated failures for the same pixel
// are reported: every failureLogInterval-th failure, not every one.
const failureLogInterval = 10

// Client fetches pixel levels from the Place API.
type Client struct {
	httpClient *http.Client
	config     Config
	policy     RetryPolicy
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the endpoint root, e.g. "https://place.zevent.fr".
	BaseURL string

	// Path is the query path appended to BaseURL.
	Path string

	// Host overrides the Host header; the Place API serves the canvas and
	// the GraphQL backend from different vhosts.
	Host string

	// AuthToken is the pre-obtained bearer token, passed verbatim in the
	// authorization header. Obtaining it is outside this client's scope.
	AuthToken string

	// ExtraHeaders are additional static headers sent with every request.
	ExtraHeaders map[string]string

	// Timeout bounds a single request attempt, not the whole retried fetch.
	Timeout time.Duration

	// Retry is the per-pixel retry policy.
	Retry RetryPolicy
}

// DefaultConfig returns a configuration matching the live Place deployment.
// The token must still be filled in by the caller.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://place.zevent.fr",
		Path:    "/graphql",
		Host:    "place-api.zevent.fr",
		Timeout: 15 * time.Second,
		Retry:   DefaultRetryPolicy(),
	}
}

// New creates a new Place client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if cfg.AuthToken == "" {
		return nil, ErrMissingAuthToken
	}

	if cfg.Path == "" {
		cfg.Path = "/graphql"
	}

	if cfg.Retry.Delay <= 0 {
		cfg.Retry.Delay = DefaultRetryPolicy().Delay
	}

	logger := log.With().Str("component", "place-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		policy: cfg.Retry,
		logger: logger,
	}, nil
}

// FetchPixelLevel fetches the level of one canvas pixel.
//
// Any failure (network, HTTP status, decode, malformed structure) is retried
// after the fixed retry delay. With the default unbounded policy the call
// blocks until it succeeds or the context is cancelled; every 10th failure
// for the pixel is logged with the coordinate and error text.
func (c *Client) FetchPixelLevel(ctx context.Context, coord canvas.Coordinate) (int, error) {
	var level int

	onFailure := func(failures int, err error) {
		placeFetchFailuresTotal.Inc()
		if failures%failureLogInterval == 0 {
			c.logger.Warn().
				Stringer("pixel", coord).
				Int("failures", failures).
				Err(err).
				Msg("Pixel fetch failing, retrying")
		}
	}

	err := retry(ctx, c.policy, onFailure, func() error {
		lvl, err := c.fetchOnce(ctx, coord)
		if err != nil {
			return err
		}
		level = lvl
		return nil
	})
	if err != nil {
		return 0, err
	}

	return level, nil
}

// fetchOnce performs a single request attempt for one pixel.
func (c *Client) fetchOnce(ctx context.Context, coord canvas.Coordinate) (int, error) {
	start := time.Now()
	defer func() {
		placeRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := c.newLevelRequest(ctx, coord)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		placeRequestsTotal.WithLabelValues("network_error").Inc()
		return 0, err
	}
	defer resp.Body.Close()

	placeRequestsTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return 0, &PlaceError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	return decodeLevel(body)
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetLogger replaces the client logger (for testing).
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}
