package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/timetrackhq/timesheet-api/internal/constants"
	"github.com/timetrackhq/timesheet-api/internal/logger"
)

// RequestLogger assigns every request a trace ID, echoes it in the
// X-Request-Id header, and logs method, path, status, and duration.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.WithRequest(c).Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}
