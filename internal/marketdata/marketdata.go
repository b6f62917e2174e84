// Package marketdata fetches movers, company overviews, intraday series and
// company news from third-party market-data APIs.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned by every call of a client built without an API key.
var ErrNotConfigured = errors.New("marketdata: api key not configured")

// StatusError is an upstream response that could not be used.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

// Mover is one row of a top gainers / losers / most active list.
type Mover struct {
	Ticker           string    `json:"ticker"`
	Price            string    `json:"price"`
	ChangeAmount     string    `json:"change_amount"`
	ChangePercentage string    `json:"change_percentage"`
	Volume           string    `json:"volume"`
	Overview         *Overview `json:"overview,omitempty"`
}

// Movers is the day's market movers.
type Movers struct {
	LastUpdated        string  `json:"last_updated"`
	TopGainers         []Mover `json:"top_gainers"`
	TopLosers          []Mover `json:"top_losers"`
	MostActivelyTraded []Mover `json:"most_actively_traded"`
}

// Overview is the company profile of a ticker.
type Overview struct {
	Symbol               string `json:"symbol"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Exchange             string `json:"exchange"`
	Sector               string `json:"sector"`
	Industry             string `json:"industry"`
	MarketCapitalization string `json:"market_capitalization"`
	PERatio              string `json:"pe_ratio"`
	DividendYield        string `json:"dividend_yield"`
	WeekHigh52           string `json:"week_high_52"`
	WeekLow52            string `json:"week_low_52"`
}

// NewsItem is one company news article.
type NewsItem struct {
	Symbol    string    `json:"symbol"`
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	Image     string    `json:"image,omitempty"`
	Published time.Time `json:"published"`
}

// QuoteProvider serves market-wide and per-ticker quote data.
type QuoteProvider interface {
	TopMovers(ctx context.Context) (*Movers, error)
	Overview(ctx context.Context, symbol string) (*Overview, error)
	Intraday(ctx context.Context, symbol, interval string) (json.RawMessage, error)
}

// NewsProvider serves company news.
type NewsProvider interface {
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]NewsItem, error)
}

// getJSON performs a GET and decodes a 200 response into out.
func getJSON(ctx context.Context, httpClient *http.Client, provider, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Provider: provider, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
