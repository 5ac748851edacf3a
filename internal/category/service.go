package category

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
}

type UpdateRequest struct {
	Name        string
	Description string
}

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	ListByServicer(ctx context.Context, servicerID string) ([]*Category, error)
	Create(ctx context.Context, req CreateRequest, servicerID string) (*Category, error)
	Update(ctx context.Context, id string, req UpdateRequest, servicerID string) (*Category, error)
	Delete(ctx context.Context, id string, servicerID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByServicer(ctx context.Context, servicerID string) ([]*Category, error) {
	return s.repo.ListByServicer(ctx, servicerID)
}

func (s *service) Create(ctx context.Context, req CreateRequest, servicerID string) (*Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	cat := &Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ServicerID:  servicerID,
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, servicerID string) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat.ServicerID != servicerID {
		return nil, ErrNotOwner
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	cat.Name = strings.TrimSpace(req.Name)
	cat.Description = req.Description

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) Delete(ctx context.Context, id string, servicerID string) error {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat.ServicerID != servicerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
