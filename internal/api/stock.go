package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/models"
	"github.com/dhargitai/stock-search-app/internal/middleware"
	"github.com/dhargitai/stock-search-app/internal/service"
)

// Handler provides HTTP handlers for the stock, watchlist and user
// endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and request bodies
//   - Delegate to the service layer
//   - Attach typed service errors for the ErrorHandler middleware to render
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	stocks    service.StockService
	watchlist service.WatchlistService
	users     service.UserService
}

// NewHandler constructs a Handler with all service dependencies injected.
func NewHandler(stocks service.StockService, watchlist service.WatchlistService, users service.UserService) *Handler {
	return &Handler{stocks: stocks, watchlist: watchlist, users: users}
}

// SearchStocks handles GET /api/v1/stocks/search requests.
//
// SearchStocks godoc
// @Summary      Search ticker symbols
// @Description  Returns symbol suggestions for a free-text query
// @Tags         stocks
// @Produce      json
// @Param        query  query     string  true  "Search query (1-50 chars)"  example(apple)
// @Success      200    {array}   models.SearchSuggestion
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      429    {object}  dto.ErrorResponse  "Upstream rate limit"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/search [get]
func (h *Handler) SearchStocks(c *gin.Context) {
	suggestions, err := h.stocks.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetQuote handles GET /api/v1/stocks/:symbol/quote requests.
//
// GetQuote godoc
// @Summary      Get current quote
// @Description  Returns the normalized real-time quote for a symbol
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol"  example(AAPL)
// @Success      200     {object}  models.Quote
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Unknown symbol"
// @Failure      429     {object}  dto.ErrorResponse  "Upstream rate limit"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/{symbol}/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	quote, err := h.stocks.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetHistory handles GET /api/v1/stocks/:symbol/history requests, the
// legacy simple 30-day view.
//
// GetHistory godoc
// @Summary      Get 30-day price history
// @Description  Returns the last 30 daily candles, oldest first
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol"  example(AAPL)
// @Success      200     {array}   models.ChartDataPoint
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "No data"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/{symbol}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	points, err := h.stocks.GetDailySeries(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetDetails handles GET /api/v1/stocks/:symbol requests.
//
// GetDetails godoc
// @Summary      Get stock details
// @Description  Returns the quote plus the chart series for the requested period
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true   "Ticker symbol"  example(AAPL)
// @Param        period  query     string  false  "Chart period"   Enums(1D, 5D, 1M, 1Y)  default(1M)
// @Success      200     {object}  models.StockDetails
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Unknown symbol"
// @Failure      429     {object}  dto.ErrorResponse  "Upstream rate limit"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/{symbol} [get]
func (h *Handler) GetDetails(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	details, err := h.stocks.GetDetails(c.Request.Context(), c.Param("symbol"), period)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, details)
}
