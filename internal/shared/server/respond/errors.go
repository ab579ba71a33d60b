package respond

import (
	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/shared/telemetry"
)

// Error sends a failure envelope and logs it with request context.
func Error(c *gin.Context, status int, message string, errs ...any) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
