package category

import (
	"net/http"
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "category not found")
	ErrNotOwner  = apperror.New(http.StatusForbidden, "you can only manage your own categories")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Category groups bookable resources under a servicer-owned label.
type Category struct {
	ID           string
	Name         string
	Description  string
	ServicerID   string
	ServicerName string
	// ResourceCount is the number of resources currently assigned to the
	// category. Populated on reads, never written.
	ResourceCount int
	CreatedAt     time.Time
}
