package resource

import (
	"context"
	"errors"
	"strings"

	"github.com/bookable-dev/resource-booking-backend/internal/category"
)

type CreateRequest struct {
	Name        string
	Description string
	CategoryID  string
	Location    string
	Capacity    int
	// IsAvailable defaults to true when not set.
	IsAvailable *bool
}

type UpdateRequest struct {
	Name        string
	Description string
	CategoryID  *string
	Location    string
	Capacity    int
	IsAvailable *bool
}

type Service interface {
	Search(ctx context.Context, filter Filter) ([]*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Resource, error)
	ListByServicer(ctx context.Context, servicerID string) ([]*Resource, error)
	Create(ctx context.Context, req CreateRequest, servicerID string) (*Resource, error)
	Update(ctx context.Context, id string, req UpdateRequest, servicerID string) (*Resource, error)
	Delete(ctx context.Context, id string, servicerID string) error
}

type service struct {
	repo       Repository
	catService category.Service
}

func NewService(repo Repository, catService category.Service) Service {
	return &service{
		repo:       repo,
		catService: catService,
	}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*Resource, error) {
	return s.repo.Search(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByCategory(ctx context.Context, categoryID string) ([]*Resource, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *service) ListByServicer(ctx context.Context, servicerID string) ([]*Resource, error) {
	return s.repo.ListByServicer(ctx, servicerID)
}

// checkCategoryOwned validates that the category exists and belongs to the
// acting servicer. Resources may only live under their owner's categories.
func (s *service) checkCategoryOwned(ctx context.Context, categoryID, servicerID string) error {
	cat, err := s.catService.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	if cat.ServicerID != servicerID {
		return ErrCategoryNotOwned
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, servicerID string) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	if err := s.checkCategoryOwned(ctx, req.CategoryID, servicerID); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	res := &Resource{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ServicerID:  servicerID,
		Location:    req.Location,
		Capacity:    req.Capacity,
		IsAvailable: isAvailable,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	// Re-read for the denormalized category/servicer names.
	return s.repo.GetByID(ctx, res.ID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, servicerID string) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.ServicerID != servicerID {
		return nil, ErrNotOwner
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	if req.CategoryID != nil && *req.CategoryID != res.CategoryID {
		if err := s.checkCategoryOwned(ctx, *req.CategoryID, servicerID); err != nil {
			return nil, err
		}
		res.CategoryID = *req.CategoryID
	}

	res.Name = strings.TrimSpace(req.Name)
	res.Description = req.Description
	res.Location = req.Location
	res.Capacity = req.Capacity
	if req.IsAvailable != nil {
		res.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, servicerID string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.ServicerID != servicerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
