package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bookable-dev/resource-booking-backend/internal/resource"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Search(ctx context.Context, filter resource.Filter) ([]*resource.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockService) ListByCategory(ctx context.Context, categoryID string) ([]*resource.Resource, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockService) ListByServicer(ctx context.Context, servicerID string) ([]*resource.Resource, error) {
	args := m.Called(ctx, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req resource.CreateRequest, servicerID string) (*resource.Resource, error) {
	args := m.Called(ctx, req, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, req resource.UpdateRequest, servicerID string) (*resource.Resource, error) {
	args := m.Called(ctx, id, req, servicerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string, servicerID string) error {
	args := m.Called(ctx, id, servicerID)
	return args.Error(0)
}

// TestSearch_QueryParamBinding pins the public query parameter names:
// categoryId and search must reach the service as a populated filter.
func TestSearch_QueryParamBinding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &MockService{}
	router := gin.New()
	RegisterRoutes(router.Group("/v1"), NewHandler(svc))

	const catID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	svc.On("Search", mock.Anything, resource.Filter{CategoryID: catID, Search: "projector"}).
		Return([]*resource.Resource{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/resources?categoryId="+catID+"&search=projector", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSearch_InvalidCategoryID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &MockService{}
	router := gin.New()
	RegisterRoutes(router.Group("/v1"), NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/resources?categoryId=not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
