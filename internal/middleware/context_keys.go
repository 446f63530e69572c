package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// accountIDKey is the key used to store the caller's account ID in the context.
const accountIDKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin
// context. It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(accountIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(accountIDKey)
		if ctxVal != nil {
			if id, ok := ctxVal.(string); ok {
				return id, true
			}
		}
		return "", false
	}

	accountID, ok := val.(string)
	if !ok {
		return "", false
	}
	return accountID, true
}

// AccountIDFromCtx is the standard-context variant for service-level code.
func AccountIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}
