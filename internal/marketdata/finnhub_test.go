package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFinnhub_CompanyNews(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company-news" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		gotQuery = map[string]string{"symbol": q.Get("symbol"), "from": q.Get("from"), "to": q.Get("to"), "token": q.Get("token")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"datetime":1760400000,"headline":"Apple ships","source":"Reuters","summary":"s","url":"https://x.test/a","related":"AAPL"}]`))
	}))
	defer srv.Close()

	c := NewFinnhubClient(srv.Client(), "fh-key")
	c.baseURL = srv.URL

	from := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	items, err := c.CompanyNews(context.Background(), "aapl", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["symbol"] != "AAPL" || gotQuery["from"] != "2026-09-15" || gotQuery["to"] != "2026-10-15" || gotQuery["token"] != "fh-key" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Symbol != "AAPL" || items[0].Headline != "Apple ships" {
		t.Errorf("unexpected item: %+v", items[0])
	}
	if !items[0].Published.Equal(time.Unix(1760400000, 0)) {
		t.Errorf("unexpected published time %s", items[0].Published)
	}
}

func TestFinnhub_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewFinnhubClient(srv.Client(), "fh-key")
	c.baseURL = srv.URL

	if _, err := c.CompanyNews(context.Background(), "AAPL", time.Now(), time.Now()); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestFinnhub_NotConfigured(t *testing.T) {
	c := NewFinnhubClient(http.DefaultClient, "")
	if _, err := c.CompanyNews(context.Background(), "AAPL", time.Now(), time.Now()); err != ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
