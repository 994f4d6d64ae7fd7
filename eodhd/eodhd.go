// Package eodhd reads quotes and company highlights from https://eodhd.com.
package eodhd

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

	"github.com/etnz/fina"
)

// DefaultBaseURL is the EODHD API endpoint.
const DefaultBaseURL = "https://eodhd.com/api"

// DefaultExchange is the EODHD exchange code appended to bare tickers.
const DefaultExchange = "US" // see https://eodhd.com/financial-apis/covered-tickers-eodhd

// Client is a QuoteProvider and a PeerProvider over the EODHD API.
type Client struct {
	APIKey   string
	Exchange string       // defaults to DefaultExchange
	BaseURL  string       // defaults to DefaultBaseURL
	HTTP     *http.Client // defaults to http.DefaultClient

	// Peers are the peers returned for every ticker, defaults to fina.DefaultPeers.
	Peers []string
}

var _ fina.QuoteProvider = (*Client)(nil)
var _ fina.PeerProvider = (*Client)(nil)

// NewClient returns a Client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

// ticker returns the EODHD ticker of symbol, "SYMBOL.EXCHANGE".
func (c *Client) ticker(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if strings.Contains(symbol, ".") {
		return symbol
	}
	exchange := c.Exchange
	if exchange == "" {
		exchange = DefaultExchange
	}
	return symbol + "." + exchange
}

// jwget performs an HTTP GET request to the given endpoint and unmarshals the
// JSON response body into the provided data structure.
func (c *Client) jwget(ctx context.Context, endpoint string, params url.Values, data any) error {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("fmt", "json")
	params.Set("api_token", c.APIKey)
	addr := base + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("cannot decode %v/%v: %w", req.URL.Host, req.URL.Path, err)
	}
	return nil
}
