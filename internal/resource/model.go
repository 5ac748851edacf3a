package resource

import (
	"net/http"
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "resource not found")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "you can only manage your own resources")
	ErrCategoryNotFound = apperror.New(http.StatusNotFound, "category not found")
	ErrCategoryNotOwned = apperror.New(http.StatusForbidden, "you can only use your own categories")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Resource is a bookable unit published by a servicer under one of their
// categories.
type Resource struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	CategoryName string
	ServicerID   string
	ServicerName string
	Location     string
	Capacity     int
	IsAvailable  bool
	CreatedAt    time.Time
}

// Filter defines parameters for the public resource search. Only available
// resources are matched; Search is a case-insensitive substring match on
// name and description.
type Filter struct {
	CategoryID string
	Search     string
}
