package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"titlehub/internal/models"
	"titlehub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(ctx context.Context, username, code string) (string, error) {
	args := m.Called(ctx, username, code)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(svc).RegisterRoutes(r.Group("/api/v1/auth"))
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint_OK(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Signup", mock.Anything, "alice", "alice@example.com").
		Return(&models.User{Username: "alice", Email: "alice@example.com", Role: models.RoleUser}, nil)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, "alice@example.com", resp["email"])
}

func TestSignupEndpoint_InvalidEmail(t *testing.T) {
	svc := new(MockAuthService)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/signup", gin.H{
		"username": "alice",
		"email":    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignupEndpoint_ReservedUsername(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Signup", mock.Anything, "me", "me@example.com").
		Return(nil, service.ErrUsernameReserved)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/signup", gin.H{
		"username": "me",
		"email":    "me@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupEndpoint_DeliveryFailure(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Signup", mock.Anything, "alice", "alice@example.com").
		Return(nil, service.ErrCodeDelivery)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestTokenEndpoint_OK(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("IssueToken", mock.Anything, "alice", "code-1").Return("signed.jwt.token", nil)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/token", gin.H{
		"username":          "alice",
		"confirmation_code": "code-1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp["access"])
}

func TestTokenEndpoint_UnknownUser(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("IssueToken", mock.Anything, "ghost", "code-1").Return("", service.ErrUserNotFound)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/token", gin.H{
		"username":          "ghost",
		"confirmation_code": "code-1",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTokenEndpoint_BadCode(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("IssueToken", mock.Anything, "alice", "wrong").Return("", service.ErrInvalidCode)

	w := postJSON(setupAuthRouter(svc), "/api/v1/auth/token", gin.H{
		"username":          "alice",
		"confirmation_code": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
