package fares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Client calls the flight fare API. A circuit breaker stops calling the
// API after repeated upstream failures.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[Quote]
}

var _ IFares = (*Client)(nil)

// New creates a fare API client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("fares: invalid base url %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = DefaultBreakerMaxFailures
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = DefaultBreakerOpenTimeout
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		breaker: gobreaker.NewCircuitBreaker[Quote](gobreaker.Settings{
			Name:        breakerName,
			MaxRequests: 1,
			Timeout:     openTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			// An unknown city is a valid answer, not an upstream fault.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrDestinationNotServed)
			},
		}),
	}, nil
}

// WithHTTPClient overrides the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BreakerState reports the circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// GetQuote fetches the fare to destination. The city is lower-cased before
// it is placed in the request path.
func (c *Client) GetQuote(ctx context.Context, destination string) (Quote, error) {
	city := strings.ToLower(strings.TrimSpace(destination))
	if city == "" {
		return Quote{}, ErrDestinationRequired
	}

	quote, err := c.breaker.Execute(func() (Quote, error) {
		return c.fetch(ctx, city)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return Quote{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return quote, err
}

func (c *Client) fetch(ctx context.Context, city string) (Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + destinationPath + url.PathEscape(city)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("fares: failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Quote{}, fmt.Errorf("fares: failed to call fare API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return Quote{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body destinationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if body.Error != "" {
		return Quote{}, fmt.Errorf("%w: %s", ErrDestinationNotServed, body.Error)
	}
	if body.Fare == "" || body.Airline == "" {
		return Quote{}, fmt.Errorf("%w: fare or airline missing", ErrMalformedResponse)
	}

	return Quote{
		Fare:        string(body.Fare),
		Airline:     body.Airline,
		AirportCode: body.AirportCode,
		AirportName: body.AirportName,
	}, nil
}
