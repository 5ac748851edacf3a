package booking

import (
	"net/http"
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrResourceNotFound    = apperror.New(http.StatusNotFound, "resource not found")
	ErrUserNotFound        = apperror.New(http.StatusNotFound, "user not found")
	ErrResourceUnavailable = apperror.New(http.StatusBadRequest, "resource is not available for booking")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "resource is already booked for the selected time slot")
	ErrNotBookingOwner     = apperror.New(http.StatusForbidden, "you can only cancel your own bookings")
	ErrNotResourceOwner    = apperror.New(http.StatusForbidden, "you can only manage bookings for your own resources")
	ErrAlreadyCancelled    = apperror.New(http.StatusBadRequest, "booking is already cancelled")
	ErrNotPending          = apperror.New(http.StatusBadRequest, "only pending bookings can be approved or rejected")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// activeStatuses are the statuses that block a time slot. Rejected and
// cancelled bookings never conflict with new requests.
var activeStatuses = []Status{StatusPending, StatusApproved}

// Booking is a time-bounded reservation request against a resource.
// Resource and user fields beyond the IDs are denormalized on reads.
type Booking struct {
	ID                 string
	ResourceID         string
	ResourceName       string
	ResourceLocation   string
	ResourceServicerID string
	UserID             string
	UserName           string
	UserEmail          string
	StartTime          time.Time
	EndTime            time.Time
	Status             Status
	Purpose            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
