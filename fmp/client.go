// Package fmp is a client for the Financial Modeling Prep API.
//
// It implements the statement repository and quote provider of package fina.
package fmp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the base URL for the FMP API.
	DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 5

	// Quarter and Annual are the statement periods FMP supports.
	Quarter = "quarter"
	Annual  = "annual"
)

// Client is an FMP API client.
type Client struct {
	baseURL    string
	apiKey     string
	period     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithPeriod selects quarterly (the default) or annual statements.
func WithPeriod(period string) Option {
	return func(c *Client) {
		c.period = period
	}
}

// WithDailyCache stores successful responses in dir, they expire the next day.
func WithDailyCache(dir string) Option {
	return func(c *Client) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient = &http.Client{
			Timeout:   c.httpClient.Timeout,
			Transport: &diskCache{base: base, dir: dir},
		}
	}
}

// NewClient creates a new FMP API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		period:  Quarter,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request to the API and decodes the JSON response into data.
func (c *Client) get(ctx context.Context, path string, params url.Values, data any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)
	addr := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %v: %w", path, err)
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read %v: %w", path, err)
	}
	body := buf.Bytes()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body), Endpoint: path}
	}
	// FMP reports some errors (invalid key, plan limits) as an object with a 200.
	if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
		return &APIError{StatusCode: resp.StatusCode, Message: msg.String(), Endpoint: path}
	}

	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("cannot decode %v: %w", path, err)
	}
	return nil
}

// errorMessage extracts FMP's error message from body, or returns body itself.
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "message"); msg.Exists() {
		return msg.String()
	}
	return strings.TrimSpace(string(body))
}
