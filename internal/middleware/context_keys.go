package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in both the Gin and the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext retrieves the request ID assigned by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(requestIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return GetRequestIDFromCtx(c.Request.Context())
}

// GetRequestIDFromCtx retrieves the request ID from a request context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
