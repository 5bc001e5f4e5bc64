// Package logger provides a thin wrapper around zerolog.Logger with
// constructors and gin-context helpers used throughout the timesheet API.
package logger

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/timetrackhq/timesheet-api/internal/constants"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on the
// wrapper type.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, tagged with the given role
// label (e.g. "server").
func New(role string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// WithRequest returns a logger carrying the request ID stored in the gin
// context by the request-id middleware.
func (l *Logger) WithRequest(c *gin.Context) *Logger {
	requestID := c.GetString(constants.ContextKeyRequestID)
	if requestID == "" {
		return l
	}

	scoped := l.With().Str("request_id", requestID).Logger()
	return &Logger{scoped}
}
