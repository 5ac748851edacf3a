package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/request"
	"github.com/bookable-dev/resource-booking-backend/internal/pkg/response"
	"github.com/bookable-dev/resource-booking-backend/internal/resource"
)

type Handler struct {
	service resource.Service
}

func NewHandler(service resource.Service) *Handler {
	return &Handler{service: service}
}

// Search serves the public catalog: available resources only, optionally
// narrowed by category and a free-text match on name/description.
func (h *Handler) Search(c *gin.Context) {
	var query SearchResourcesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	filter := resource.Filter{
		CategoryID: query.CategoryID,
		Search:     query.Search,
	}

	resources, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewResourceListResponse(resources))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid resource id")
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewResourceResponse(res))
}

func (h *Handler) ListByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")
	if _, err := uuid.Parse(categoryID); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	resources, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewResourceListResponse(resources))
}

func (h *Handler) ListMine(c *gin.Context) {
	resources, err := h.service.ListByServicer(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", NewResourceListResponse(resources))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := resource.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		CategoryID:  body.CategoryID,
		Location:    body.Location,
		Capacity:    body.Capacity,
		IsAvailable: body.IsAvailable,
	}

	res, err := h.service.Create(c.Request.Context(), req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Resource created successfully", NewResourceResponse(res))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid resource id")
		return
	}

	var body UpdateResourceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := resource.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		CategoryID:  body.CategoryID,
		Location:    body.Location,
		Capacity:    body.Capacity,
		IsAvailable: body.IsAvailable,
	}

	res, err := h.service.Update(c.Request.Context(), uri.ID, req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Resource updated successfully", NewResourceResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.AbortError(c, http.StatusBadRequest, "invalid resource id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Resource deleted successfully", nil)
}
