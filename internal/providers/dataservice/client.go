package dataservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/pkg/log"
	"github.com/sandevgo/csvterm/pkg/retry"
)

const (
	maxResponseSize       = 4 << 20
	defaultRequestTimeout = 10 * time.Second
)

// Client talks to the CSV/weather backend. Each call is one independent
// request; there is no caching or retrying here.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	retrier *retry.Retrier
}

var _ core.DataService = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid data service url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid data service url %q: scheme and host required", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
		retrier: retry.NewDefaultRetrier(),
	}, nil
}

// WithRetryConfig replaces the backoff used by Ping.
func (c *Client) WithRetryConfig(cfg *retry.Config) *Client {
	c.retrier = retry.NewRetrier(cfg)
	return c
}

func (c *Client) LoadCSV(ctx context.Context, path string) (core.LoadResponse, error) {
	var resp core.LoadResponse
	err := c.get(ctx, "loadcsv", url.Values{"filepath": {path}}, &resp)
	return resp, err
}

func (c *Client) GetCSV(ctx context.Context) (core.CSVResponse, error) {
	var resp core.CSVResponse
	err := c.get(ctx, "getcsv", nil, &resp)
	return resp, err
}

func (c *Client) Stats(ctx context.Context) (core.StatsResponse, error) {
	var resp core.StatsResponse
	err := c.get(ctx, "stats", nil, &resp)
	return resp, err
}

func (c *Client) Weather(ctx context.Context, lat, lon string) (core.WeatherResponse, error) {
	var resp core.WeatherResponse
	err := c.get(ctx, "weather", url.Values{"lat": {lat}, "lon": {lon}}, &resp)
	return resp, err
}

// Ping waits until the service answers any HTTP request, backing off
// between attempts.
func (c *Client) Ping(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	r := c.retrier.OnRetry(func(attempt int, delay time.Duration, err error) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("data service not ready")
	})

	return r.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("stats", nil), nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", core.ErrServiceUnavailable, err)
		}
		resp.Body.Close()
		return nil
	})
}

func (c *Client) endpoint(name string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + name
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *Client) get(ctx context.Context, name string, query url.Values, out any) error {
	logger := log.FromCtx(ctx)
	endpoint := c.endpoint(name, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.TermUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", name, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.Debug().
			Str("endpoint", name).
			Int("status", resp.StatusCode).
			Str("body", bodyText(body)).
			Msg("non-json response from data service")
		return fmt.Errorf("%w: %s returned HTTP %d", core.ErrBadResponse, name, resp.StatusCode)
	}

	logger.Debug().Str("endpoint", name).Int("status", resp.StatusCode).Msg("data service call")
	return nil
}

// bodyText renders an error page as plain text for the log.
func bodyText(body []byte) string {
	text, err := html2text.FromReader(bytes.NewReader(body), html2text.Options{OmitLinks: true})
	if err != nil {
		text = string(body)
	}
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > 200 {
		text = text[:197] + "..."
	}
	return text
}
