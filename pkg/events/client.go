// Package events provides a client for the Microsoft Events card API:
// page fetching with bounded retry, a sequential pagination sweep, and
// defensive projection of the loosely shaped upstream cards.
package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultAPIURL is the public events card endpoint.
	DefaultAPIURL = "https://www.microsoft.com/msonecloudapi/events/cards"

	// DefaultLocale is the locale used when a tool call does not name one.
	DefaultLocale = "de-de"

	// PageSize is the fixed page size for data page requests.
	PageSize = 100

	// The endpoint sits behind bot protection that rejects default Go
	// user agents, so requests present a browser-like one.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	requestTimeout = 60 * time.Second
)

// Prometheus metrics for client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "msevents_requests_total",
		Help: "Total events API requests by outcome",
	}, []string{"status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "msevents_request_duration_seconds",
		Help:    "Events API request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})
)

// Config holds the client configuration.
type Config struct {
	// APIURL is the events card endpoint. Empty means DefaultAPIURL.
	APIURL string

	// Retry controls the transport-failure retry loop.
	Retry RetryConfig

	// HTTPClient overrides the underlying HTTP client (for testing).
	// Nil means a client with the fixed 60s request timeout.
	HTTPClient *http.Client
}

// Client issues requests against the events card API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	retry      RetryConfig
	logger     zerolog.Logger
}

// NewClient creates a new events API client.
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Client{
		httpClient: httpClient,
		apiURL:     cfg.APIURL,
		retry:      cfg.Retry,
		logger:     log.With().Str("component", "events-client").Logger(),
	}
}

// FetchPage fetches a single page from the events API.
//
// Only transport-level failures (dial, timeout, body read) are retried;
// any completed HTTP exchange is final regardless of status or payload
// content. A response body that is not valid JSON fails without retry.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (*PageResponse, error) {
	payload, err := json.Marshal(requestBody{
		Locale:   req.Locale,
		Top:      req.Top,
		Skip:     req.Skip,
		Filters:  req.Filters,
		Scenario: "Events",
		Query:    req.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	startTime := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(startTime).Seconds())
	}()

	var body []byte
	retryErr := retryWithBackoff(ctx, c.retry, func() error {
		httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
		if reqErr != nil {
			return reqErr
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("User-Agent", userAgent)

		resp, doErr := c.httpClient.Do(httpReq)
		if doErr != nil {
			c.logger.Warn().
				Err(doErr).
				Int("top", req.Top).
				Int("skip", req.Skip).
				Msg("Events API request failed")
			requestsTotal.WithLabelValues("network_error").Inc()
			return doErr
		}
		defer resp.Body.Close()

		body, reqErr = io.ReadAll(resp.Body)
		if reqErr != nil {
			c.logger.Warn().Err(reqErr).Msg("Reading events API response failed")
			requestsTotal.WithLabelValues("read_error").Inc()
			return reqErr
		}

		requestsTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}

	var page PageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode events API response: %w", err)
	}

	c.logger.Debug().
		Str("locale", req.Locale).
		Int("top", req.Top).
		Int("skip", req.Skip).
		Int("total_count", page.TotalCount).
		Int("cards", len(page.Cards)).
		Msg("Fetched events page")

	return &page, nil
}
