package http

import (
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/category"
)

type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ServicerID    string    `json:"servicer_id"`
	ServicerName  string    `json:"servicer_name"`
	ResourceCount int       `json:"resource_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewCategoryResponse(cat *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:            cat.ID,
		Name:          cat.Name,
		Description:   cat.Description,
		ServicerID:    cat.ServicerID,
		ServicerName:  cat.ServicerName,
		ResourceCount: cat.ResourceCount,
		CreatedAt:     cat.CreatedAt,
	}
}

func NewCategoryListResponse(cats []*category.Category) []CategoryResponse {
	items := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		items[i] = NewCategoryResponse(cat)
	}
	return items
}

type CreateCategoryBody struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryBody struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}
