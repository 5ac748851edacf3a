package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.AbortError(c, http.StatusUnauthorized, "invalid Authorization header format")
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// Store actor info into Gin context for later handlers.
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}
