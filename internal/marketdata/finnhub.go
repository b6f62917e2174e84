package marketdata

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

type finnhubArticle struct {
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// FinnhubClient fetches company news from Finnhub.
type FinnhubClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string // overridable for tests
}

// NewFinnhubClient creates a Finnhub client. An empty apiKey yields a client
// whose calls fail with ErrNotConfigured.
func NewFinnhubClient(httpClient *http.Client, apiKey string) *FinnhubClient {
	return &FinnhubClient{httpClient: httpClient, apiKey: apiKey, baseURL: finnhubBaseURL}
}

// CompanyNews returns the news published about symbol between from and to (by day).
func (c *FinnhubClient) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]NewsItem, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	symbol = strings.ToUpper(symbol)
	params := url.Values{
		"symbol": {symbol},
		"from":   {from.Format(time.DateOnly)},
		"to":     {to.Format(time.DateOnly)},
		"token":  {c.apiKey},
	}

	var articles []finnhubArticle
	if err := getJSON(ctx, c.httpClient, "finnhub", c.baseURL+"/company-news?"+params.Encode(), &articles); err != nil {
		return nil, err
	}

	items := make([]NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItem{
			Symbol:    symbol,
			Headline:  a.Headline,
			Summary:   a.Summary,
			Source:    a.Source,
			URL:       a.URL,
			Image:     a.Image,
			Published: time.Unix(a.Datetime, 0).UTC(),
		})
	}
	return items, nil
}
