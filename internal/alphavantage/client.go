package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dhargitai/stock-search-app/config"
)

// OutputSize selects how much daily history the upstream returns.
type OutputSize string

const (
	// OutputCompact returns roughly the 100 most recent daily candles.
	OutputCompact OutputSize = "compact"
	// OutputFull returns the complete daily history (20+ years).
	OutputFull OutputSize = "full"
)

// intradayInterval is the only intraday granularity this service requests;
// it matches the payload key "Time Series (15min)".
const intradayInterval = "15min"

// Client is a thin HTTP client for the Alpha Vantage query API.
//
// Every call is bounded by the configured timeout (the upstream enforces
// none) and honors the caller's context. Responses are classified before
// being returned, so a non-nil payload from any method is safe to normalize.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a client from the Alpha Vantage section of the app
// configuration.
func NewClient(cfg config.AlphaVantageConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// GlobalQuote fetches the GLOBAL_QUOTE payload for a symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*GlobalQuotePayload, error) {
	var payload GlobalQuotePayload
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	if err := c.getJSON(ctx, params, &payload); err != nil {
		return nil, err
	}
	if err := classify(payload.errorEnvelope); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DailySeries fetches the TIME_SERIES_DAILY payload for a symbol with the
// requested output size.
func (c *Client) DailySeries(ctx context.Context, symbol string, size OutputSize) (*DailySeriesPayload, error) {
	var payload DailySeriesPayload
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", string(size))
	if err := c.getJSON(ctx, params, &payload); err != nil {
		return nil, err
	}
	if err := classify(payload.errorEnvelope); err != nil {
		return nil, err
	}
	return &payload, nil
}

// IntradaySeries fetches the TIME_SERIES_INTRADAY payload for a symbol at
// the 15-minute interval.
func (c *Client) IntradaySeries(ctx context.Context, symbol string) (*IntradaySeriesPayload, error) {
	var payload IntradaySeriesPayload
	params := url.Values{}
	params.Set("function", "TIME_SERIES_INTRADAY")
	params.Set("symbol", symbol)
	params.Set("interval", intradayInterval)
	params.Set("outputsize", string(OutputCompact))
	if err := c.getJSON(ctx, params, &payload); err != nil {
		return nil, err
	}
	if err := classify(payload.errorEnvelope); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SymbolSearch fetches the SYMBOL_SEARCH payload for a keyword query.
func (c *Client) SymbolSearch(ctx context.Context, keywords string) (*SearchPayload, error) {
	var payload SearchPayload
	params := url.Values{}
	params.Set("function", "SYMBOL_SEARCH")
	params.Set("keywords", keywords)
	if err := c.getJSON(ctx, params, &payload); err != nil {
		return nil, err
	}
	if err := classify(payload.errorEnvelope); err != nil {
		return nil, err
	}
	return &payload, nil
}

// getJSON performs a GET against /query with the given parameters (plus the
// API key) and decodes the body into v. Transport failures and non-200
// statuses surface as plain errors, which the service maps to its generic
// upstream-failure kind.
func (c *Client) getJSON(ctx context.Context, params url.Values, v any) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Timeout reports the per-call timeout the client was built with.
func (c *Client) Timeout() time.Duration { return c.httpClient.Timeout }
