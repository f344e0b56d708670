package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/dto"
	"github.com/dhargitai/stock-search-app/internal/logger"
)

// RecoveryMiddleware recovers from panics raised during request handling,
// logs the stack trace, and returns a standardized 500 JSON response. The
// panic value is never echoed back to the client.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("Internal server error", nil))
			}
		}()

		c.Next()
	}
}
