package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/category"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/request"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
)

type Handler struct {
	service category.Service
}

func NewHandler(service category.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewCategoryListResponse(cats))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewCategoryResponse(cat))
}

func (h *Handler) ListMine(c *gin.Context) {
	cats, err := h.service.ListByServicer(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewCategoryListResponse(cats))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := category.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
	}

	cat, err := h.service.Create(c.Request.Context(), req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", NewCategoryResponse(cat))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var body UpdateCategoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := category.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
	}

	cat, err := h.service.Update(c.Request.Context(), uri.ID, req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", NewCategoryResponse(cat))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category deleted successfully", nil)
}
