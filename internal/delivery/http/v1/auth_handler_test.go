package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) Me(ctx context.Context) (*domain.ProfileDetails, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.(*domain.ProfileDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateMe(ctx context.Context, input domain.UpdateProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, input)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) EnsureProfile(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) AddSkill(ctx context.Context, input domain.SkillInput) (*domain.Skill, error) {
	args := m.Called(ctx, input)
	if s := args.Get(0); s != nil {
		return s.(*domain.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) RemoveSkill(ctx context.Context, skillID string) error {
	return m.Called(ctx, skillID).Error(0)
}

func (m *MockProfileUsecase) AddLanguage(ctx context.Context, input domain.LanguageInput) (*domain.Language, error) {
	args := m.Called(ctx, input)
	if l := args.Get(0); l != nil {
		return l.(*domain.Language), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) RemoveLanguage(ctx context.Context, languageID string) error {
	return m.Called(ctx, languageID).Error(0)
}

func (m *MockProfileUsecase) AddProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, input)
	if p := args.Get(0); p != nil {
		return p.(*domain.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileUsecase) RemoveProject(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *MockProfileUsecase) UpdateAvatar(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockProfileUsecase) RemoveAvatar(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// newAuthRouter mounts the auth routes against a stub GoTrue server.
func newAuthRouter(t *testing.T, gotrue http.HandlerFunc, profileUC domain.ProfileUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	stub := httptest.NewServer(gotrue)
	t.Cleanup(stub.Close)

	cfg := &config.Config{
		SupabaseUrl: stub.URL,
		SupabaseKey: "service-key",
		FrontendURL: "http://localhost:3000",
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	public := r.Group("/v1")
	protected := r.Group("/v1")
	v1.NewAuthHandler(public, protected, profileUC, cfg)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionReply(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token":  "token-abc",
		"refresh_token": "refresh-abc",
		"expires_in":    3600,
		"user": map[string]interface{}{
			"id":    "user-123",
			"email": "marie@example.com",
			"user_metadata": map[string]interface{}{
				"first_name": "Marie",
				"last_name":  "Dupont",
			},
		},
	})
}

func TestRegister(t *testing.T) {
	registerBody := gin.H{
		"first_name": "Marie",
		"last_name":  "Dupont",
		"email":      "marie@example.com",
		"password":   "Abcdef1!",
	}

	t.Run("Should create the profile row from a bare user reply", func(t *testing.T) {
		profileUC := new(MockProfileUsecase)
		profileUC.On("EnsureProfile", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.UserID == "user-456" && p.Role == domain.RoleUser
		})).Return(nil)

		r := newAuthRouter(t, func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{"id": "user-456", "email": "marie@example.com"})
		}, profileUC)

		w := postJSON(t, r, "/v1/auth/register", registerBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		profileUC.AssertExpectations(t)
	})

	t.Run("Should create the profile row from an autoconfirm session reply", func(t *testing.T) {
		profileUC := new(MockProfileUsecase)
		profileUC.On("EnsureProfile", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.UserID == "user-123" && p.FirstName == "Marie" && p.Role == domain.RoleUser
		})).Return(nil)

		r := newAuthRouter(t, func(w http.ResponseWriter, req *http.Request) {
			sessionReply(w)
		}, profileUC)

		w := postJSON(t, r, "/v1/auth/register", registerBody)
		assert.Equal(t, http.StatusCreated, w.Code)
		profileUC.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	loginBody := gin.H{"email": "marie@example.com", "password": "Abcdef1!"}

	t.Run("Should sync the profile from the session user", func(t *testing.T) {
		profileUC := new(MockProfileUsecase)
		profileUC.On("EnsureProfile", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.UserID == "user-123" && p.Email == "marie@example.com" && p.LastName == "Dupont"
		})).Return(nil)

		r := newAuthRouter(t, func(w http.ResponseWriter, req *http.Request) {
			sessionReply(w)
		}, profileUC)

		w := postJSON(t, r, "/v1/auth/login", loginBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token-abc")
		profileUC.AssertExpectations(t)
	})

	t.Run("Should reject bad credentials without touching profiles", func(t *testing.T) {
		profileUC := new(MockProfileUsecase)

		r := newAuthRouter(t, func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"error_description": "Invalid login credentials"})
		}, profileUC)

		w := postJSON(t, r, "/v1/auth/login", loginBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		profileUC.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything)
	})
}
