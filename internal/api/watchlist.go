package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/dto"
	"github.com/dhargitai/stock-search-app/internal/domain/models"
	"github.com/dhargitai/stock-search-app/internal/middleware"
)

// currentUser returns the authenticated user id or aborts with 401 when
// the auth middleware did not run.
func currentUser(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		middleware.AbortWithError(c, http.StatusUnauthorized, "authentication required", nil)
	}
	return id, ok
}

// ListWatchlist handles GET /api/v1/watchlist requests.
//
// ListWatchlist godoc
// @Summary      List watchlist
// @Description  Returns the authenticated user's watchlist, newest first
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.WatchlistItem
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/watchlist [get]
func (h *Handler) ListWatchlist(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.watchlist.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToWatchlist handles POST /api/v1/watchlist requests.
//
// AddToWatchlist godoc
// @Summary      Add symbol to watchlist
// @Description  Adds a ticker symbol to the authenticated user's watchlist
// @Tags         watchlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.AddWatchlistRequest  true  "Symbol to add"
// @Success      201      {object}  models.WatchlistItem
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401      {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      409      {object}  dto.ErrorResponse  "Already in watchlist"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/watchlist [post]
func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	item, err := h.watchlist.Add(c.Request.Context(), userID, req.Symbol)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// CheckWatchlist handles GET /api/v1/watchlist/:symbol requests.
//
// CheckWatchlist godoc
// @Summary      Check watchlist membership
// @Description  Reports whether a symbol is in the authenticated user's watchlist
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        symbol  path      string  true  "Ticker symbol"  example(AAPL)
// @Success      200     {object}  dto.WatchlistCheckResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401     {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/watchlist/{symbol} [get]
func (h *Handler) CheckWatchlist(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	symbol, err := models.ParseSymbol(c.Param("symbol"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	inWatchlist, err := h.watchlist.Check(c.Request.Context(), userID, symbol)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.WatchlistCheckResponse{Symbol: symbol, InWatchlist: inWatchlist})
}

// RemoveFromWatchlist handles DELETE /api/v1/watchlist/:symbol requests.
//
// RemoveFromWatchlist godoc
// @Summary      Remove symbol from watchlist
// @Description  Removes a ticker symbol from the authenticated user's watchlist
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        symbol  path      string  true  "Ticker symbol"  example(AAPL)
// @Success      200     {object}  models.WatchlistItem
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401     {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      404     {object}  dto.ErrorResponse  "Not in watchlist"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/watchlist/{symbol} [delete]
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	item, err := h.watchlist.Remove(c.Request.Context(), userID, c.Param("symbol"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}
