package booking

import (
	"context"
	"errors"
	"time"

	"github.com/bookable-dev/resource-booking-backend/internal/resource"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

type CreateRequest struct {
	UserID     string
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
	Purpose    string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListByServicer(ctx context.Context, servicerID string, pendingOnly bool) ([]*Booking, error)
	Cancel(ctx context.Context, id string, userID string) (*Booking, error)
	Approve(ctx context.Context, id string, servicerID string) (*Booking, error)
	Reject(ctx context.Context, id string, servicerID string) (*Booking, error)
}

type service struct {
	repo        Repository
	resService  resource.Service
	userService user.Service
}

func NewService(repo Repository, resService resource.Service, userService user.Service) Service {
	return &service{
		repo:        repo,
		resService:  resService,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	u, err := s.userService.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	res, err := s.resService.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if !res.IsAvailable {
		return nil, ErrResourceUnavailable
	}

	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	// Fast-path conflict check. The repository re-checks under a resource
	// row lock inside Create, which is what actually prevents the
	// check-then-act race.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.ResourceID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		ResourceID: req.ResourceID,
		UserID:     req.UserID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     StatusPending,
		Purpose:    req.Purpose,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Denormalized view fields come from the entities resolved above.
	b.ResourceName = res.Name
	b.ResourceLocation = res.Location
	b.ResourceServicerID = res.ServicerID
	b.UserName = u.Name
	b.UserEmail = u.Email

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListByServicer(ctx context.Context, servicerID string, pendingOnly bool) ([]*Booking, error) {
	var status Status
	if pendingOnly {
		status = StatusPending
	}
	return s.repo.ListByServicer(ctx, servicerID, status)
}

// Cancel moves a booking to cancelled. Only the requesting user may cancel,
// and cancelled is terminal: cancelling twice fails. Approved and rejected
// bookings remain cancellable by their owner.
func (s *service) Cancel(ctx context.Context, id string, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	return s.transition(ctx, b, StatusCancelled)
}

// Approve moves a pending booking to approved. Only the servicer owning the
// booked resource may approve.
func (s *service) Approve(ctx context.Context, id string, servicerID string) (*Booking, error) {
	return s.decide(ctx, id, servicerID, StatusApproved)
}

// Reject moves a pending booking to rejected. Only the servicer owning the
// booked resource may reject.
func (s *service) Reject(ctx context.Context, id string, servicerID string) (*Booking, error) {
	return s.decide(ctx, id, servicerID, StatusRejected)
}

func (s *service) decide(ctx context.Context, id string, servicerID string, status Status) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.ResourceServicerID != servicerID {
		return nil, ErrNotResourceOwner
	}
	if b.Status != StatusPending {
		return nil, ErrNotPending
	}

	return s.transition(ctx, b, status)
}

func (s *service) transition(ctx context.Context, b *Booking, status Status) (*Booking, error) {
	if err := s.repo.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return b, nil
}
