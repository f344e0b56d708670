package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/apperr"
	"github.com/dhargitai/stock-search-app/internal/domain/dto"
	"github.com/dhargitai/stock-search-app/internal/logger"
)

// ErrorHandler is a Gin middleware that translates errors collected during
// request handling into a standardized JSON response.
//
// Handlers attach errors with c.Error(err) and return; this middleware maps
// the first error's kind to its HTTP status. Typed domain errors pass
// through with their client-safe message; anything unclassified becomes a
// 500 with a generic message so storage and upstream detail never leaks.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors[0].Err

	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()

	logger.L().Error().
		Err(err).
		Str("kind", string(kind)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(apperr.MessageOf(err), nil))
}

// AbortWithError writes a standardized error response and aborts the
// request. Used by handlers for validation failures they classify
// themselves.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
