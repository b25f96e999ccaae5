package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestID reuses a caller supplied id or generates one, echoes it in the
// response and stores it on the request context for loggers.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := logging.ContextWithFields(c.Request.Context(), map[string]any{"request_id": id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func accessLog(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := logger.WithContext(c.Request.Context())
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(started),
		}
		if c.Writer.Status() >= 500 {
			entry.Error("api.request.completed", args...)
			return
		}
		entry.Info("api.request.completed", args...)
	}
}
