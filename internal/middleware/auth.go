package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/timetrackhq/timesheet-api/internal/apperrors"
	"github.com/timetrackhq/timesheet-api/internal/constants"
	"github.com/timetrackhq/timesheet-api/internal/response"
	"github.com/timetrackhq/timesheet-api/internal/services"
)

// RequireAuth authenticates the bearer token from the Authorization header
// and stores the resolved user ID in the gin context. Protected handlers see
// only requests that passed this check.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractBearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			response.AbortWithError(c, apperrors.Authentication("Unauthenticated."))
			return
		}

		user, err := authService.Authenticate(raw)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := value.(uint64)
	return id, ok
}

// extractBearerToken returns the token from an Authorization header value.
// A bare token without the Bearer prefix is also accepted.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return strings.TrimSpace(header)
}
