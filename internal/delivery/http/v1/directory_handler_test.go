package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-talent-backend/internal/delivery/http/middleware"
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDirectoryUsecase struct {
	mock.Mock
}

func (m *MockDirectoryUsecase) Search(ctx context.Context, query domain.DirectoryQuery) ([]domain.ProfileDetails, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.([]domain.ProfileDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) Options(ctx context.Context) (*domain.FilterOptions, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.(*domain.FilterOptions), args.Error(1)
	}
	return nil, args.Error(1)
}

func newDirectoryRouter(t *testing.T, directoryUC domain.DirectoryUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewDirectoryHandler(r.Group("/v1"), directoryUC)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDirectorySearchQuery(t *testing.T) {
	t.Run("Should reject an unparsable verified value", func(t *testing.T) {
		directoryUC := new(MockDirectoryUsecase)
		r := newDirectoryRouter(t, directoryUC)

		w := getPath(r, "/v1/students?verified=banana")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		directoryUC.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("Should forward a parsed verified value", func(t *testing.T) {
		directoryUC := new(MockDirectoryUsecase)
		directoryUC.On("Search", mock.Anything, mock.MatchedBy(func(q domain.DirectoryQuery) bool {
			return q.Filters.Verified != nil && *q.Filters.Verified
		})).Return([]domain.ProfileDetails{}, nil)
		r := newDirectoryRouter(t, directoryUC)

		w := getPath(r, "/v1/students?verified=true")
		assert.Equal(t, http.StatusOK, w.Code)
		directoryUC.AssertExpectations(t)
	})
}
