package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dhargitai/stock-search-app/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1), with the watchlist and profile
//     groups behind session authentication.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - verify (middleware.SessionVerifier): Resolves bearer tokens to user ids.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, verify middleware.SessionVerifier) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		stocks := v1.Group("/stocks")
		{
			stocks.GET("/search", handler.SearchStocks)
			stocks.GET("/:symbol", handler.GetDetails)
			stocks.GET("/:symbol/quote", handler.GetQuote)
			stocks.GET("/:symbol/history", handler.GetHistory)
		}

		v1.POST("/users", handler.CreateUser)
		v1.GET("/users/:id", handler.GetUser)

		authed := v1.Group("", middleware.Authenticated(verify))
		{
			authed.GET("/users/me", handler.GetProfile)

			watchlist := authed.Group("/watchlist")
			{
				watchlist.GET("", handler.ListWatchlist)
				watchlist.POST("", handler.AddToWatchlist)
				watchlist.GET("/:symbol", handler.CheckWatchlist)
				watchlist.DELETE("/:symbol", handler.RemoveFromWatchlist)
			}
		}
	}

	return router
}
