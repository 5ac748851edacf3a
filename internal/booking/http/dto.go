package http

import (
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/booking"
)

type BookingResponse struct {
	ID               string    `json:"id"`
	ResourceID       string    `json:"resource_id"`
	ResourceName     string    `json:"resource_name"`
	ResourceLocation string    `json:"resource_location"`
	UserID           string    `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	Purpose          string    `json:"purpose"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ResourceID:       b.ResourceID,
		ResourceName:     b.ResourceName,
		ResourceLocation: b.ResourceLocation,
		UserID:           b.UserID,
		UserName:         b.UserName,
		UserEmail:        b.UserEmail,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		Status:           string(b.Status),
		Purpose:          b.Purpose,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func NewBookingListResponse(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}

type CreateBookingBody struct {
	ResourceID string    `json:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	Purpose    string    `json:"purpose"`
}

type ListServicerBookingsQuery struct {
	PendingOnly bool `form:"pendingOnly"`
}
