package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dhargitai/stock-search-app/internal/domain/dto"
	"github.com/dhargitai/stock-search-app/internal/logger"
	"github.com/dhargitai/stock-search-app/internal/storage"
)

// UserIDKey is the gin context key under which Authenticated stores the
// resolved user id.
const UserIDKey = "user_id"

// SessionVerifier resolves a bearer session token to a user id. Sessions
// are issued by the external auth provider; the default verifier reads its
// session table through the repository.
type SessionVerifier func(ctx context.Context, token string) (string, error)

// Authenticated is a Gin middleware guarding the watchlist routes.
//
// Behavior:
//   - Requires an "Authorization: Bearer <token>" header.
//   - Resolves the token through the injected SessionVerifier.
//   - Stores the user id in the context under UserIDKey.
//   - A missing, malformed, unknown or expired token yields 401 with a
//     standardized error body. A verifier failure that is not a missing
//     session (a database outage, say) is a 500, not a 401; error detail is
//     logged but never sent to the client.
func Authenticated(verify SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required", nil))
			return
		}

		userID, err := verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				logger.L().Debug().Err(err).Msg("session verification failed")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid or expired session", nil))
				return
			}
			logger.L().Error().Err(err).Msg("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to verify session", nil))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by Authenticated.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
