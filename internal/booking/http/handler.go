package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/booking"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/request"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewBookingListResponse(bookings))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Bookings are only visible to the user who requested them.
	if b.UserID != auth.GetUserID(c) {
		response.AbortError(c, http.StatusForbidden, "access denied")
		return
	}

	response.OK(c, "", NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := booking.CreateRequest{
		UserID:     auth.GetUserID(c),
		ResourceID: body.ResourceID,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Purpose:    body.Purpose,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Booking request submitted successfully", NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking cancelled successfully", NewBookingResponse(b))
}

func (h *Handler) ListForServicer(c *gin.Context) {
	var query ListServicerBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	bookings, err := h.service.ListByServicer(c.Request.Context(), auth.GetUserID(c), query.PendingOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewBookingListResponse(bookings))
}

func (h *Handler) Approve(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.Approve(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking approved successfully", NewBookingResponse(b))
}

func (h *Handler) Reject(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	b, err := h.service.Reject(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Booking rejected successfully", NewBookingResponse(b))
}
