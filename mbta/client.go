package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mcsjb/mbta/config"
	"github.com/mcsjb/mbta/logging"
)

// Client wraps the MBTA v3 API. Transient failures (connection errors,
// 429 and 5xx responses) are retried with exponential backoff before
// surfacing as a *RequestError.
type Client struct {
	baseURL    string
	apiKey     string
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	validate   *validator.Validate
	log        *zap.SugaredLogger
}

func NewClient(cfg *config.AppConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		maxRetries: cfg.API.MaxRetries,
		backoff:    time.Duration(cfg.API.BackoffMS) * time.Millisecond,
		httpClient: &http.Client{Timeout: time.Duration(cfg.API.TimeoutMS) * time.Millisecond},
		validate:   validator.New(),
		log:        logging.GetLogger(),
	}
}

// GetRoutes returns all routes, optionally filtered by GTFS route type.
func (c *Client) GetRoutes(ctx context.Context, routeTypes []int) (*RoutesResponse, error) {
	query := url.Values{}
	if len(routeTypes) > 0 {
		types := make([]string, len(routeTypes))
		for i, t := range routeTypes {
			types[i] = strconv.Itoa(t)
		}
		query.Set("filter[type]", strings.Join(types, ","))
	}

	var res RoutesResponse
	if err := c.getJSON(ctx, "/routes", query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetStops returns every stop served by the given route.
func (c *Client) GetStops(ctx context.Context, routeID string) (*StopsResponse, error) {
	query := url.Values{}
	if routeID != "" {
		query.Set("filter[route]", routeID)
	}

	var res StopsResponse
	if err := c.getJSON(ctx, "/stops", query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, reqURL, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{URL: reqURL, Err: fmt.Errorf("invalid JSON response: %w", err)}
	}
	if err := c.validate.Struct(out); err != nil {
		c.log.Errorw("response validation failed", "endpoint", path, "error", err)
		return &ValidationError{Endpoint: path, Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// backoff * 2^(attempt-1)
			delay := c.backoff << (attempt - 1)
			c.log.Warnw("retrying request", "url", reqURL, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, reqURL, &RequestError{URL: reqURL, Err: ctx.Err()}
			}
		}

		body, retriable, err := c.doOnce(ctx, reqURL)
		if err == nil {
			return body, reqURL, nil
		}
		lastErr = err
		if !retriable {
			return nil, reqURL, &RequestError{URL: reqURL, Err: err}
		}
	}
	return nil, reqURL, &RequestError{URL: reqURL, Err: fmt.Errorf("retries exhausted: %w", lastErr)}
}

// doOnce performs a single GET and reports whether a failure is worth
// retrying.
func (c *Client) doOnce(ctx context.Context, reqURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, retriableStatus(resp.StatusCode), fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	return body, false, nil
}

func retriableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
