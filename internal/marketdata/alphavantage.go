package marketdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// alphaVantageNotice carries the throttling / error fields Alpha Vantage
// returns with a 200 status.
type alphaVantageNotice struct {
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

func (n alphaVantageNotice) err() error {
	for _, msg := range []string{n.ErrorMessage, n.Note, n.Information} {
		if msg != "" {
			return &StatusError{Provider: "alphavantage", StatusCode: http.StatusOK, Message: msg}
		}
	}
	return nil
}

type alphaVantageMovers struct {
	alphaVantageNotice
	LastUpdated        string  `json:"last_updated"`
	TopGainers         []Mover `json:"top_gainers"`
	TopLosers          []Mover `json:"top_losers"`
	MostActivelyTraded []Mover `json:"most_actively_traded"`
}

type alphaVantageOverview struct {
	alphaVantageNotice
	Symbol               string `json:"Symbol"`
	Name                 string `json:"Name"`
	Description          string `json:"Description"`
	Exchange             string `json:"Exchange"`
	Sector               string `json:"Sector"`
	Industry             string `json:"Industry"`
	MarketCapitalization string `json:"MarketCapitalization"`
	PERatio              string `json:"PERatio"`
	DividendYield        string `json:"DividendYield"`
	WeekHigh52           string `json:"52WeekHigh"`
	WeekLow52            string `json:"52WeekLow"`
}

// AlphaVantageClient talks to the Alpha Vantage query API.
type AlphaVantageClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string // overridable for tests
}

// NewAlphaVantageClient creates an Alpha Vantage client. An empty apiKey
// yields a client whose calls fail with ErrNotConfigured.
func NewAlphaVantageClient(httpClient *http.Client, apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{httpClient: httpClient, apiKey: apiKey, baseURL: alphaVantageBaseURL}
}

func (c *AlphaVantageClient) query(ctx context.Context, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	params.Set("apikey", c.apiKey)
	return getJSON(ctx, c.httpClient, "alphavantage", c.baseURL+"?"+params.Encode(), out)
}

// TopMovers returns the day's top gainers, losers and most traded tickers.
func (c *AlphaVantageClient) TopMovers(ctx context.Context) (*Movers, error) {
	var resp alphaVantageMovers
	if err := c.query(ctx, url.Values{"function": {"TOP_GAINERS_LOSERS"}}, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return &Movers{
		LastUpdated:        resp.LastUpdated,
		TopGainers:         resp.TopGainers,
		TopLosers:          resp.TopLosers,
		MostActivelyTraded: resp.MostActivelyTraded,
	}, nil
}

// Overview returns the company profile of symbol.
func (c *AlphaVantageClient) Overview(ctx context.Context, symbol string) (*Overview, error) {
	var resp alphaVantageOverview
	params := url.Values{"function": {"OVERVIEW"}, "symbol": {strings.ToUpper(symbol)}}
	if err := c.query(ctx, params, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return &Overview{
		Symbol:               resp.Symbol,
		Name:                 resp.Name,
		Description:          resp.Description,
		Exchange:             resp.Exchange,
		Sector:               resp.Sector,
		Industry:             resp.Industry,
		MarketCapitalization: resp.MarketCapitalization,
		PERatio:              resp.PERatio,
		DividendYield:        resp.DividendYield,
		WeekHigh52:           resp.WeekHigh52,
		WeekLow52:            resp.WeekLow52,
	}, nil
}

// Intraday returns the raw intraday time series of symbol.
func (c *AlphaVantageClient) Intraday(ctx context.Context, symbol, interval string) (json.RawMessage, error) {
	var raw json.RawMessage
	params := url.Values{
		"function": {"TIME_SERIES_INTRADAY"},
		"symbol":   {strings.ToUpper(symbol)},
		"interval": {interval},
	}
	if err := c.query(ctx, params, &raw); err != nil {
		return nil, err
	}

	var notice alphaVantageNotice
	if err := json.Unmarshal(raw, &notice); err == nil {
		if err := notice.err(); err != nil {
			return nil, err
		}
	}
	return raw, nil
}
