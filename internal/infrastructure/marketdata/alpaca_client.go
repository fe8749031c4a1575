package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AlpacaClient fetches stock snapshots from the Alpaca market data API
type AlpacaClient struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

// NewAlpacaClient creates a new Alpaca market data client
func NewAlpacaClient(apiKey, apiSecret, baseURL string, timeout time.Duration) *AlpacaClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AlpacaClient{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetSnapshots fetches snapshots for all tickers in a single batched call.
// The result preserves the order of the requested tickers; tickers the
// provider has no data for yield nil entries.
func (c *AlpacaClient) GetSnapshots(ctx context.Context, tickers []string) ([]*Snapshot, error) {
	if len(tickers) == 0 {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/v2/stocks/snapshots?symbols=%s", c.baseURL, url.QueryEscape(strings.Join(tickers, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("APCA-API-KEY-ID", c.apiKey)
	req.Header.Set("APCA-API-SECRET-KEY", c.apiSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpaca snapshots returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The API keys the response by symbol; the Symbol field itself is not
	// part of each payload.
	var bySymbol map[string]*Snapshot
	if err := json.Unmarshal(body, &bySymbol); err != nil {
		return nil, err
	}

	results := make([]*Snapshot, 0, len(tickers))
	for _, ticker := range tickers {
		snapshot := bySymbol[ticker]
		if snapshot != nil {
			snapshot.Symbol = ticker
		}
		results = append(results, snapshot)
	}
	return results, nil
}
