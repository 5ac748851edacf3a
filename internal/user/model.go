package user

import (
	"net/http"
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "role must be user or servicer")
)

// Role distinguishes booking users from servicers who publish resources.
type Role string

const (
	RoleUser     Role = "user"
	RoleServicer Role = "servicer"
)

// User represents an account in the system. Servicers own categories and
// resources; users request bookings against them.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}
