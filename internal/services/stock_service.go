package services

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/logger"
	"finwise/internal/marketdata"
	"finwise/internal/models"
)

// DefaultIntradayInterval is used when no interval is requested.
const DefaultIntradayInterval = "5min"

var intradayIntervals = []string{"1min", "5min", "15min", "30min", "60min"}

// maxConcurrentFetches caps the upstream calls made for one request.
const maxConcurrentFetches = 5

// stockService manages the watch-list and proxies market data.
type stockService struct {
	db     *gorm.DB
	quotes marketdata.QuoteProvider
	news   marketdata.NewsProvider
	now    func() time.Time
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB, quotes marketdata.QuoteProvider, news marketdata.NewsProvider) StockServicer {
	return &stockService{db: db, quotes: quotes, news: news, now: utcNow}
}

// AddStock puts a symbol on the user's watch-list.
func (s *stockService) AddStock(userID, symbol string, price decimal.Decimal, volume int64) (*models.Stock, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol is required")
	}
	if price.IsNegative() || volume < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price and volume cannot be negative")
	}

	var count int64
	if err := s.db.Model(&models.Stock{}).Where("user_id = ? AND symbol = ?", userID, symbol).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateStock
	}

	stock := &models.Stock{UserID: userID, Symbol: symbol, Price: price, Volume: volume}
	if err := s.db.Create(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stock, nil
}

// GetStocks returns the watch-list ordered by symbol.
func (s *stockService) GetStocks(userID string) ([]models.Stock, error) {
	stocks := []models.Stock{}
	if err := s.db.Where("user_id = ?", userID).Order("symbol ASC").Find(&stocks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stocks, nil
}

// RemoveStock hard-deletes a symbol from the watch-list so it can be added again.
func (s *stockService) RemoveStock(userID, symbol string) error {
	result := s.db.Unscoped().
		Where("user_id = ? AND symbol = ?", userID, strings.ToUpper(strings.TrimSpace(symbol))).
		Delete(&models.Stock{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrStockNotFound
	}
	return nil
}

// GetNews fetches last month's company news for every watched symbol, newest first.
func (s *stockService) GetNews(ctx context.Context, userID string) ([]marketdata.NewsItem, error) {
	stocks, err := s.GetStocks(userID)
	if err != nil {
		return nil, err
	}

	to := s.now()
	from := to.AddDate(0, -1, 0)

	var (
		mu  sync.Mutex
		all = []marketdata.NewsItem{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for _, stock := range stocks {
		symbol := stock.Symbol
		g.Go(func() error {
			items, err := s.news.CompanyNews(gctx, symbol, from, to)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, marketDataError(err)
	}

	slices.SortStableFunc(all, func(a, b marketdata.NewsItem) int {
		return b.Published.Compare(a.Published)
	})
	return all, nil
}

// GetMarketTrends returns the day's movers with a company overview attached to
// each top gainer. Overviews that fail are logged and left empty.
func (s *stockService) GetMarketTrends(ctx context.Context) (*MarketTrends, error) {
	movers, err := s.quotes.TopMovers(ctx)
	if err != nil {
		return nil, marketDataError(err)
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i := range movers.TopGainers {
		gainer := &movers.TopGainers[i]
		g.Go(func() error {
			overview, err := s.quotes.Overview(ctx, gainer.Ticker)
			if err != nil {
				logger.Get().Warnw("failed to fetch company overview", "error", err, "symbol", gainer.Ticker)
				return nil
			}
			gainer.Overview = overview
			return nil
		})
	}
	_ = g.Wait()

	return movers, nil
}

// GetIntraday returns the raw intraday series of a symbol.
func (s *stockService) GetIntraday(ctx context.Context, symbol, interval string) (json.RawMessage, error) {
	if interval == "" {
		interval = DefaultIntradayInterval
	}
	if !slices.Contains(intradayIntervals, interval) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interval must be one of "+strings.Join(intradayIntervals, ", "))
	}

	series, err := s.quotes.Intraday(ctx, strings.ToUpper(symbol), interval)
	if err != nil {
		return nil, marketDataError(err)
	}
	return series, nil
}

func marketDataError(err error) error {
	if errors.Is(err, marketdata.ErrNotConfigured) {
		return apperrors.ErrMarketDataDisabled
	}
	return apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
}
