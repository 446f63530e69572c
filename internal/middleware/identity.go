package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccountIDHeader carries the caller-authenticated account identifier.
// Verification happens upstream (gateway); by the time a request reaches this
// service the header value is trusted as-is.
const AccountIDHeader = "X-Account-ID"

// IdentityMiddleware creates a Gin middleware handler that requires the
// account identity header on every request. A missing or empty header is a
// terminal Unauthorized condition, never retried.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		accountID := strings.TrimSpace(c.GetHeader(AccountIDHeader))
		if accountID == "" {
			logger.Warn("Account identity header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account identity required"})
			return
		}

		// Store the account ID in the standard context so services can reach it.
		ctxWithAccount := context.WithValue(c.Request.Context(), accountIDKey, accountID)

		// Enrich the request logger with the caller identity.
		enrichedLogger := logger.With(slog.String("account_id", accountID))
		ctxWithLogger := context.WithValue(ctxWithAccount, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLogger)
		c.Set(string(accountIDKey), accountID)

		c.Next()
	}
}
