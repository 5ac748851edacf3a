package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookable-dev/resource-booking-backend/internal/resource"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, b *Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Booking), args.Error(1)
}

func (m *MockRepository) ListByServicer(ctx context.Context, servicerID string, status Status) ([]*Booking, error) {
	args := m.Called(ctx, servicerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Booking), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) HasOverlap(ctx context.Context, resourceID string, start, end time.Time) (bool, error) {
	args := m.Called(ctx, resourceID, start, end)
	return args.Bool(0), args.Error(1)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) Search(ctx context.Context, filter resource.Filter) ([]*resource.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockResourceService) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockResourceService) ListByCategory(ctx context.Context, categoryID string) ([]*resource.Resource, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockResourceService) ListByServicer(ctx context.Context, servicerID string) ([]*resource.Resource, error) {
	args := m.Called(ctx, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockResourceService) Create(ctx context.Context, req resource.CreateRequest, servicerID string) (*resource.Resource, error) {
	args := m.Called(ctx, req, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockResourceService) Update(ctx context.Context, id string, req resource.UpdateRequest, servicerID string) (*resource.Resource, error) {
	args := m.Called(ctx, id, req, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockResourceService) Delete(ctx context.Context, id string, servicerID string) error {
	args := m.Called(ctx, id, servicerID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password, name string, role user.Role) (*user.User, error) {
	args := m.Called(ctx, email, password, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type serviceMocks struct {
	repo *MockRepository
	res  *MockResourceService
	user *MockUserService
}

func newTestService() (Service, serviceMocks) {
	m := serviceMocks{
		repo: &MockRepository{},
		res:  &MockResourceService{},
		user: &MockUserService{},
	}
	return NewService(m.repo, m.res, m.user), m
}

func testUser(id string) *user.User {
	return &user.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  "User " + id,
		Role:  user.RoleUser,
	}
}

func testResource(id, servicerID string, available bool) *resource.Resource {
	return &resource.Resource{
		ID:          id,
		Name:        "Meeting Room A",
		ServicerID:  servicerID,
		Location:    "Building 1",
		IsAvailable: available,
	}
}

func TestCreate_Success(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil).Once()
	m.res.On("GetByID", ctx, "r1").Return(testResource("r1", "s1", true), nil).Once()
	m.repo.On("HasOverlap", ctx, "r1", start, end).Return(false, nil).Once()
	m.repo.On("Create", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:     "u1",
		ResourceID: "r1",
		StartTime:  start,
		EndTime:    end,
		Purpose:    "team sync",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "Meeting Room A", b.ResourceName)
	assert.Equal(t, "Building 1", b.ResourceLocation)
	assert.Equal(t, "s1", b.ResourceServicerID)
	assert.Equal(t, "User u1", b.UserName)
	assert.Equal(t, "u1@example.com", b.UserEmail)
	assert.Equal(t, "team sync", b.Purpose)
	m.repo.AssertExpectations(t)
}

func TestCreate_InvalidTimeRange(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil)
	m.res.On("GetByID", ctx, "r1").Return(testResource("r1", "s1", true), nil)

	// end before start
	_, err := svc.Create(ctx, CreateRequest{
		UserID: "u1", ResourceID: "r1",
		StartTime: start, EndTime: start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// start == end is rejected too
	_, err = svc.Create(ctx, CreateRequest{
		UserID: "u1", ResourceID: "r1",
		StartTime: start, EndTime: start,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	m.repo.AssertNotCalled(t, "HasOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_UnavailabilityBeatsRangeCheck(t *testing.T) {
	// The availability check runs before range validation, so an unavailable
	// resource reports ErrResourceUnavailable even for a valid range.
	svc, m := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil)
	m.res.On("GetByID", ctx, "r1").Return(testResource("r1", "s1", false), nil)

	_, err := svc.Create(ctx, CreateRequest{
		UserID: "u1", ResourceID: "r1",
		StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestCreate_ResourceNotFound(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil)
	m.res.On("GetByID", ctx, "missing").Return(nil, resource.ErrNotFound)

	_, err := svc.Create(ctx, CreateRequest{
		UserID: "u1", ResourceID: "missing",
		StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestCreate_UserNotFound(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.user.On("GetByID", ctx, "ghost").Return(nil, user.ErrNotFound)

	_, err := svc.Create(ctx, CreateRequest{
		UserID: "ghost", ResourceID: "r1",
		StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	m.res.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreate_Conflict(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	m.user.On("GetByID", ctx, "u2").Return(testUser("u2"), nil)
	m.res.On("GetByID", ctx, "r1").Return(testResource("r1", "s1", true), nil)
	m.repo.On("HasOverlap", ctx, "r1", start, end).Return(true, nil).Once()

	_, err := svc.Create(ctx, CreateRequest{
		UserID: "u2", ResourceID: "r1",
		StartTime: start, EndTime: end,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_ConflictUnderLock(t *testing.T) {
	// The unlocked fast path misses a concurrent insert; the locked
	// re-check inside the repository catches it.
	svc, m := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil)
	m.res.On("GetByID", ctx, "r1").Return(testResource("r1", "s1", true), nil)
	m.repo.On("HasOverlap", ctx, "r1", start, end).Return(false, nil).Once()
	m.repo.On("Create", ctx, mock.AnythingOfType("*booking.Booking")).Return(ErrTimeConflict).Once()

	_, err := svc.Create(ctx, CreateRequest{
		UserID: "u1", ResourceID: "r1",
		StartTime: start, EndTime: end,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func pendingBooking(id, resourceID, userID, servicerID string) *Booking {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &Booking{
		ID:                 id,
		ResourceID:         resourceID,
		ResourceServicerID: servicerID,
		UserID:             userID,
		StartTime:          start,
		EndTime:            start.Add(time.Hour),
		Status:             StatusPending,
	}
}

func TestCancel_ByOwner(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Once()
	m.repo.On("UpdateStatus", ctx, "b1", StatusCancelled).Return(nil).Once()

	got, err := svc.Cancel(ctx, "b1", "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	m.repo.AssertExpectations(t)
}

func TestCancel_NotOwner(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Once()

	_, err := svc.Cancel(ctx, "b1", "intruder")
	assert.ErrorIs(t, err, ErrNotBookingOwner)
	m.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	b.Status = StatusCancelled
	// Cancelling a cancelled booking fails on every attempt, it is not
	// treated as an idempotent success.
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Twice()

	_, err := svc.Cancel(ctx, "b1", "u1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	_, err = svc.Cancel(ctx, "b1", "u1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_ApprovedBookingAllowed(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	b.Status = StatusApproved
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Once()
	m.repo.On("UpdateStatus", ctx, "b1", StatusCancelled).Return(nil).Once()

	got, err := svc.Cancel(ctx, "b1", "u1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.repo.On("GetByID", ctx, "missing").Return(nil, ErrNotFound).Once()

	_, err := svc.Cancel(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprove_ByResourceOwner(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Once()
	m.repo.On("UpdateStatus", ctx, "b1", StatusApproved).Return(nil).Once()

	got, err := svc.Approve(ctx, "b1", "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
}

func TestApprove_NotResourceOwner(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Twice()

	// Neither another servicer nor the booking user may approve.
	_, err := svc.Approve(ctx, "b1", "other-servicer")
	assert.ErrorIs(t, err, ErrNotResourceOwner)

	_, err = svc.Approve(ctx, "b1", "u1")
	assert.ErrorIs(t, err, ErrNotResourceOwner)
	m.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReject_ByResourceOwner(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	b := pendingBooking("b1", "r1", "u1", "s1")
	m.repo.On("GetByID", ctx, "b1").Return(b, nil).Once()
	m.repo.On("UpdateStatus", ctx, "b1", StatusRejected).Return(nil).Once()

	got, err := svc.Reject(ctx, "b1", "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got.Status)
}

func TestDecide_OnlyPendingTransitions(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	for _, status := range []Status{StatusApproved, StatusRejected, StatusCancelled} {
		b := pendingBooking("b1", "r1", "u1", "s1")
		b.Status = status
		m.repo.On("GetByID", ctx, "b1").Return(b, nil).Twice()

		_, err := svc.Approve(ctx, "b1", "s1")
		assert.ErrorIs(t, err, ErrNotPending, "approve from %s must fail", status)

		_, err = svc.Reject(ctx, "b1", "s1")
		assert.ErrorIs(t, err, ErrNotPending, "reject from %s must fail", status)
	}

	m.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByServicer_PendingOnly(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.repo.On("ListByServicer", ctx, "s1", StatusPending).Return([]*Booking{}, nil).Once()
	m.repo.On("ListByServicer", ctx, "s1", Status("")).Return([]*Booking{}, nil).Once()

	_, err := svc.ListByServicer(ctx, "s1", true)
	require.NoError(t, err)

	_, err = svc.ListByServicer(ctx, "s1", false)
	require.NoError(t, err)

	m.repo.AssertExpectations(t)
}

// TestBookingWorkflow walks the end-to-end sequence: a user books a free
// slot, a second user is rejected on the overlapping slot, the servicer
// approves the first booking, and a later non-overlapping slot succeeds.
func TestBookingWorkflow(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	res := testResource("r1", "s1", true)
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	m.user.On("GetByID", ctx, "u1").Return(testUser("u1"), nil)
	m.user.On("GetByID", ctx, "u2").Return(testUser("u2"), nil)
	m.res.On("GetByID", ctx, "r1").Return(res, nil)

	// User U books 10:00-11:00 on the empty calendar.
	m.repo.On("HasOverlap", ctx, "r1", start, end).Return(false, nil).Once()
	m.repo.On("Create", ctx, mock.AnythingOfType("*booking.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*Booking).ID = "b1"
	}).Return(nil).Once()

	b1, err := svc.Create(ctx, CreateRequest{UserID: "u1", ResourceID: "r1", StartTime: start, EndTime: end})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b1.Status)

	// User V requests 10:30-11:30, overlapping U's pending booking.
	vStart := start.Add(30 * time.Minute)
	vEnd := vStart.Add(time.Hour)
	m.repo.On("HasOverlap", ctx, "r1", vStart, vEnd).Return(true, nil).Once()

	_, err = svc.Create(ctx, CreateRequest{UserID: "u2", ResourceID: "r1", StartTime: vStart, EndTime: vEnd})
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Servicer S approves U's booking.
	b1.ResourceServicerID = "s1"
	m.repo.On("GetByID", ctx, "b1").Return(b1, nil).Once()
	m.repo.On("UpdateStatus", ctx, "b1", StatusApproved).Return(nil).Once()

	approved, err := svc.Approve(ctx, "b1", "s1")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	// V retries on a later slot that clears the inclusive-bound check.
	retryStart := end.Add(30 * time.Minute)
	retryEnd := retryStart.Add(time.Hour)
	m.repo.On("HasOverlap", ctx, "r1", retryStart, retryEnd).Return(false, nil).Once()
	m.repo.On("Create", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()

	b2, err := svc.Create(ctx, CreateRequest{UserID: "u2", ResourceID: "r1", StartTime: retryStart, EndTime: retryEnd})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b2.Status)
}
