package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finwise/internal/errors"
	"finwise/internal/marketdata"
	"finwise/internal/models"
	"finwise/internal/services"
)

type mockStockService struct {
	addStockFn        func(userID, symbol string, price decimal.Decimal, volume int64) (*models.Stock, error)
	getStocksFn       func(userID string) ([]models.Stock, error)
	removeStockFn     func(userID, symbol string) error
	getNewsFn         func(userID string) ([]marketdata.NewsItem, error)
	getMarketTrendsFn func() (*services.MarketTrends, error)
	getIntradayFn     func(symbol, interval string) (json.RawMessage, error)
}

var _ services.StockServicer = (*mockStockService)(nil)

func (m *mockStockService) AddStock(userID, symbol string, price decimal.Decimal, volume int64) (*models.Stock, error) {
	if m.addStockFn != nil {
		return m.addStockFn(userID, symbol, price, volume)
	}
	return &models.Stock{UserID: userID, Symbol: symbol, Price: price, Volume: volume}, nil
}

func (m *mockStockService) GetStocks(userID string) ([]models.Stock, error) {
	if m.getStocksFn != nil {
		return m.getStocksFn(userID)
	}
	return []models.Stock{}, nil
}

func (m *mockStockService) RemoveStock(userID, symbol string) error {
	if m.removeStockFn != nil {
		return m.removeStockFn(userID, symbol)
	}
	return nil
}

func (m *mockStockService) GetNews(_ context.Context, userID string) ([]marketdata.NewsItem, error) {
	if m.getNewsFn != nil {
		return m.getNewsFn(userID)
	}
	return []marketdata.NewsItem{}, nil
}

func (m *mockStockService) GetMarketTrends(context.Context) (*services.MarketTrends, error) {
	if m.getMarketTrendsFn != nil {
		return m.getMarketTrendsFn()
	}
	return &services.MarketTrends{}, nil
}

func (m *mockStockService) GetIntraday(_ context.Context, symbol, interval string) (json.RawMessage, error) {
	if m.getIntradayFn != nil {
		return m.getIntradayFn(symbol, interval)
	}
	return json.RawMessage(`{}`), nil
}

func setupStockRouter(handler *StockHandler) *gin.Engine {
	r := gin.New()
	s := r.Group("/stocks", injectUserID(testUserID))
	s.POST("", handler.AddStock)
	s.GET("", handler.GetStocks)
	s.GET("/news", handler.GetNews)
	s.GET("/market-trends", handler.GetMarketTrends)
	s.DELETE("/:symbol", handler.RemoveStock)
	s.GET("/:symbol/intraday", handler.GetIntraday)
	return r
}

func TestStockHandler_AddStock(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupStockRouter(NewStockHandler(&mockStockService{}, audit))
		rec := doRequest(r, http.MethodPost, "/stocks", `{"symbol":"AAPL","price":"189.30","volume":1200}`)
		assertStatus(t, rec, http.StatusCreated)
		if !audit.logged("ADD_STOCK") {
			t.Error("expected ADD_STOCK audit entry")
		}
	})

	t.Run("returns 400 on a malformed symbol", func(t *testing.T) {
		r := setupStockRouter(NewStockHandler(&mockStockService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/stocks", `{"symbol":"TOOLONG","price":1,"volume":1}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("returns 409 on a duplicate", func(t *testing.T) {
		svc := &mockStockService{
			addStockFn: func(string, string, decimal.Decimal, int64) (*models.Stock, error) {
				return nil, apperrors.ErrDuplicateStock
			},
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/stocks", `{"symbol":"AAPL","price":1,"volume":1}`)
		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_STOCK")
	})
}

func TestStockHandler_RemoveStock(t *testing.T) {
	t.Run("upper-cases the symbol", func(t *testing.T) {
		var got string
		svc := &mockStockService{
			removeStockFn: func(_, symbol string) error {
				got = symbol
				return nil
			},
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodDelete, "/stocks/aapl", "")
		assertStatus(t, rec, http.StatusOK)
		if got != "AAPL" {
			t.Errorf("expected AAPL, got %q", got)
		}
	})

	t.Run("returns 404 when not watched", func(t *testing.T) {
		svc := &mockStockService{
			removeStockFn: func(string, string) error { return apperrors.ErrStockNotFound },
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodDelete, "/stocks/MSFT", "")
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "STOCK_NOT_FOUND")
	})
}

func TestStockHandler_MarketData(t *testing.T) {
	t.Run("news maps a disabled provider to 503", func(t *testing.T) {
		svc := &mockStockService{
			getNewsFn: func(string) ([]marketdata.NewsItem, error) { return nil, apperrors.ErrMarketDataDisabled },
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/stocks/news", "")
		assertStatus(t, rec, http.StatusServiceUnavailable)
		assertErrorCode(t, parseJSON(t, rec), "MARKET_DATA_DISABLED")
	})

	t.Run("market trends are wrapped", func(t *testing.T) {
		svc := &mockStockService{
			getMarketTrendsFn: func() (*services.MarketTrends, error) {
				return &services.MarketTrends{TopGainers: []marketdata.Mover{{Ticker: "NVDA"}}}, nil
			},
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/stocks/market-trends", "")
		assertStatus(t, rec, http.StatusOK)
		trends := parseJSON(t, rec)["trends"].(map[string]interface{})
		if len(trends["top_gainers"].([]interface{})) != 1 {
			t.Errorf("expected one gainer, got %v", trends["top_gainers"])
		}
	})

	t.Run("intraday passes the series through untouched", func(t *testing.T) {
		var gotInterval string
		svc := &mockStockService{
			getIntradayFn: func(_, interval string) (json.RawMessage, error) {
				gotInterval = interval
				return json.RawMessage(`{"Meta Data":{"2. Symbol":"IBM"}}`), nil
			},
		}
		r := setupStockRouter(NewStockHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/stocks/IBM/intraday?interval=15min", "")
		assertStatus(t, rec, http.StatusOK)
		if gotInterval != "15min" {
			t.Errorf("expected 15min, got %q", gotInterval)
		}
		if rec.Body.String() != `{"Meta Data":{"2. Symbol":"IBM"}}` {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("intraday rejects a malformed symbol", func(t *testing.T) {
		r := setupStockRouter(NewStockHandler(&mockStockService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/stocks/AB12/intraday", "")
		assertStatus(t, rec, http.StatusBadRequest)
	})
}
