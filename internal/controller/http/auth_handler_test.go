package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moodwave/internal/entity"
	"moodwave/internal/usecase"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(input usecase.RegisterInput, requesterRole string) (*entity.User, string, error) {
	args := m.Called(input, requesterRole)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	args := m.Called(userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey, contentType string) (*entity.User, error) {
	args := m.Called(userID, fileReader, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateUserRole(userID, role string) (*entity.User, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) DeleteUser(userID, requesterID string) error {
	args := m.Called(userID, requesterID)
	return args.Error(0)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestRegister_Created(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", mock.AnythingOfType("usecase.RegisterInput"), "").
		Return(&entity.User{UserID: "user_new", Name: "Alice", Role: entity.RoleUser}, "a-token", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", jsonBody(t, RegisterRequest{
		Name:           "Alice",
		Email:          "alice@moodwave.local",
		Password:       "password123",
		PreferredMoods: []string{"Happy", "Calm", "Dreamy"},
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "a-token", response.Token)
	assert.Equal(t, "user_new", response.User.UserID)

	mockUseCase.AssertExpectations(t)
}

func TestRegister_DuplicateEmailIsBadRequest(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", mock.AnythingOfType("usecase.RegisterInput"), "").
		Return(nil, "", fmt.Errorf("%w: user with this email already exists", entity.ErrConflict))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", jsonBody(t, RegisterRequest{
		Name:     "Alice",
		Email:    "alice@moodwave.local",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegister_ElevationWithoutAdminIsForbidden(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/register", func(c *gin.Context) {
		c.Set("user_id", "user_plain")
		c.Set("user_role", "user")
		handler.Register(c)
	})

	mockUseCase.On("Register", mock.AnythingOfType("usecase.RegisterInput"), "user").
		Return(nil, "", fmt.Errorf("%w: only admins can assign elevated roles", entity.ErrForbidden))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", jsonBody(t, RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@moodwave.local",
		Password: "password123",
		Role:     "admin",
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBufferString(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "alice@moodwave.local", "wrong").
		Return(nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrUnauthorized))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", jsonBody(t, LoginRequest{
		Email:    "alice@moodwave.local",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", "user_1")
		handler.Me(c)
	})

	mockUseCase.On("GetUser", "user_1").
		Return(&entity.User{UserID: "user_1", Name: "Alice"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_1")
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/auth/users/:userId", func(c *gin.Context) {
		c.Set("user_id", "user_admin")
		c.Set("user_role", "admin")
		handler.DeleteUser(c)
	})

	mockUseCase.On("DeleteUser", "user_ghost", "user_admin").
		Return(fmt.Errorf("%w: user user_ghost", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/auth/users/user_ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
