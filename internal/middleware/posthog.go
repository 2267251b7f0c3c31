package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/user_profile_aggregator/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/api/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
// Requests are anonymous, so the request ID is used as the distinct ID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Create event name from route path (e.g., "/api/user" -> "api_user")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		requestID, ok := GetRequestIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for k, v := range c.Keys {
			if strings.HasPrefix(k, eventPropertyPrefix) {
				props[strings.TrimPrefix(k, eventPropertyPrefix)] = v
			}
		}

		posthogClient.Enqueue(requestID, eventName, props)
	}
}

const eventPropertyPrefix = "posthog."

// SetEventProperty attaches a property to the usage event of the current request.
func SetEventProperty(c *gin.Context, key string, value any) {
	c.Set(eventPropertyPrefix+key, value)
}
