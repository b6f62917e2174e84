package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finwise/internal/services"
)

// StockHandler handles the watch-list and market data requests
type StockHandler struct {
	stockService services.StockServicer
	auditService services.AuditServicer
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService services.StockServicer, auditService services.AuditServicer) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		auditService: auditService,
	}
}

// AddStockRequest represents the request body for watching a symbol
type AddStockRequest struct {
	Symbol string          `json:"symbol" binding:"required,stock_symbol"`
	Price  decimal.Decimal `json:"price" binding:"gte=0"`
	Volume int64           `json:"volume" binding:"gte=0"`
}

// SymbolURI binds the ticker path parameter
type SymbolURI struct {
	Symbol string `uri:"symbol" binding:"required,stock_symbol"`
}

// AddStock puts a symbol on the watch-list
// @Summary     Add stock
// @Description Add a symbol to the user's watch-list
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddStockRequest true "Stock data"
// @Success     201 {object} map[string]interface{} "Stock added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Already watched"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [post]
func (h *StockHandler) AddStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	stock, err := h.stockService.AddStock(userID, req.Symbol, req.Price, req.Volume)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_STOCK", "stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"symbol": stock.Symbol})

	c.JSON(http.StatusCreated, gin.H{"stock": stock})
}

// GetStocks lists the watch-list
// @Summary     List stocks
// @Description Get the user's watch-list ordered by symbol
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Stocks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *StockHandler) GetStocks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stocks, err := h.stockService.GetStocks(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stocks": stocks})
}

// RemoveStock takes a symbol off the watch-list
// @Summary     Remove stock
// @Description Remove a symbol from the watch-list
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} MessageResponse "Stock removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{symbol} [delete]
func (h *StockHandler) RemoveStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol := strings.ToUpper(c.Param("symbol"))
	if err := h.stockService.RemoveStock(userID, symbol); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_STOCK", "stock", symbol, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Stock removed successfully"})
}

// GetNews returns last month's company news for every watched symbol
// @Summary     Stock news
// @Description Company news for the watch-list over the last month, newest first
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "News"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Failure     503 {object} ErrorResponse "Market data not configured"
// @Router      /stocks/news [get]
func (h *StockHandler) GetNews(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	news, err := h.stockService.GetNews(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": news})
}

// GetMarketTrends returns today's top gainers, losers and most active tickers
// @Summary     Market trends
// @Description Top gainers and losers, with a company overview for each gainer
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Trends"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Failure     503 {object} ErrorResponse "Market data not configured"
// @Router      /stocks/market-trends [get]
func (h *StockHandler) GetMarketTrends(c *gin.Context) {
	trends, err := h.stockService.GetMarketTrends(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetIntraday passes through the intraday time series of a symbol
// @Summary     Intraday series
// @Description Raw intraday time series for a symbol
// @Tags        stocks
// @Produce     json
// @Security    BearerAuth
// @Param       symbol   path  string true  "Ticker symbol"
// @Param       interval query string false "1min, 5min, 15min, 30min or 60min (default 5min)"
// @Success     200 {object} map[string]interface{} "Series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Failure     503 {object} ErrorResponse "Market data not configured"
// @Router      /stocks/{symbol}/intraday [get]
func (h *StockHandler) GetIntraday(c *gin.Context) {
	var uri SymbolURI
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, err)
		return
	}

	series, err := h.stockService.GetIntraday(c.Request.Context(), uri.Symbol, c.Query("interval"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", series)
}
