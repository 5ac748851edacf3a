package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewAuthHandler(userService user.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Name, user.Role(req.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account created successfully", NewUserResponse(u))
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		response.AbortError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	response.OK(c, "Login successful", LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

// Me handles GET /v1/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		response.AbortError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "", NewUserResponse(u))
}
