package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

// RequireServicer ensures the authenticated account has the servicer role.
// It MUST be used after auth.AuthRequired middleware.
func RequireServicer(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		// The role claim is enough for routing, but re-check against the
		// store so a stale token cannot outlive a role change.
		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "user not found")
			return
		}

		if u.Role != user.RoleServicer {
			response.AbortError(c, http.StatusForbidden, "forbidden: servicer access required")
			return
		}

		c.Next()
	}
}
