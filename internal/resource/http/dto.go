package http

import (
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/resource"
)

type ResourceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ServicerID   string    `json:"servicer_id"`
	ServicerName string    `json:"servicer_name"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewResourceResponse(res *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:           res.ID,
		Name:         res.Name,
		Description:  res.Description,
		CategoryID:   res.CategoryID,
		CategoryName: res.CategoryName,
		ServicerID:   res.ServicerID,
		ServicerName: res.ServicerName,
		Location:     res.Location,
		Capacity:     res.Capacity,
		IsAvailable:  res.IsAvailable,
		CreatedAt:    res.CreatedAt,
	}
}

func NewResourceListResponse(resources []*resource.Resource) []ResourceResponse {
	items := make([]ResourceResponse, len(resources))
	for i, res := range resources {
		items[i] = NewResourceResponse(res)
	}
	return items
}

type SearchResourcesQuery struct {
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
	Search     string `form:"search"`
}

type CreateResourceBody struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=0"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateResourceBody struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity" binding:"omitempty,min=0"`
	IsAvailable *bool   `json:"is_available"`
}
