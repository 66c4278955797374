package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tallermanager/workshop-backend/internal/auth"
	"github.com/tallermanager/workshop-backend/internal/db"
	"github.com/tallermanager/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserCollection is a mock implementation of UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAuthHandler_Register(t *testing.T) {
	authService := auth.NewService("test-secret", time.Hour)

	t.Run("successful registration", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		registerReq := models.RegisterRequest{
			Name:     "New User",
			Email:    "newuser@example.com",
			Password: "password123",
			Role:     models.RoleMechanic,
		}

		created := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         registerReq.Name,
			Email:        registerReq.Email,
			Role:         registerReq.Role,
			PasswordHash: "hashed",
		}

		mockUsers.On("FindUserByEmail", mock.Anything, "newuser@example.com").Return(nil, db.ErrNotFound)
		mockUsers.On("InsertUser", mock.Anything, mock.AnythingOfType("models.User")).Return(created, nil)

		body, err := json.Marshal(registerReq)
		if err != nil {
			t.Fatalf("Failed to marshal register request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		err = json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.Equal(t, registerReq.Name, response["name"])
		assert.Equal(t, registerReq.Email, response["email"])
		assert.NotContains(t, response, "password")

		mockUsers.AssertExpectations(t)
	})

	t.Run("email already exists", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		existing := &models.User{
			ID:    primitive.NewObjectID(),
			Email: "existing@example.com",
		}
		mockUsers.On("FindUserByEmail", mock.Anything, "existing@example.com").Return(existing, nil)

		registerReq := models.RegisterRequest{
			Name:     "New User",
			Email:    "existing@example.com",
			Password: "password123",
			Role:     models.RoleClient,
		}

		body, err := json.Marshal(registerReq)
		if err != nil {
			t.Fatalf("Failed to marshal register request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User already exists")
		mockUsers.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		registerReq := models.RegisterRequest{
			Name:     "New User",
			Email:    "newuser@example.com",
			Password: "password123",
			Role:     "invalid_role",
		}

		body, err := json.Marshal(registerReq)
		if err != nil {
			t.Fatalf("Failed to marshal register request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		req := httptest.NewRequest("POST", "/api/users/register", bytes.NewBufferString(`{"email":"only@example.com"}`))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	authService := auth.NewService("test-secret", time.Hour)

	t.Run("successful login", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		// Create a real password hash
		passwordHash, err := authService.HashPassword("password123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         "Test User",
			Email:        "test@example.com",
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
		}

		mockUsers.On("FindUserByEmail", mock.Anything, "test@example.com").Return(user, nil)

		loginReq := models.LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		}

		body, err := json.Marshal(loginReq)
		if err != nil {
			t.Fatalf("Failed to marshal login request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.LoginResponse
		err = json.Unmarshal(w.Body.Bytes(), &response)
		if err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		assert.NotEmpty(t, response.Token)

		claims, err := authService.ValidateToken(response.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, user.Role, claims.Role)

		mockUsers.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		mockUsers.On("FindUserByEmail", mock.Anything, "nobody@example.com").Return(nil, db.ErrNotFound)

		loginReq := models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}

		body, err := json.Marshal(loginReq)
		if err != nil {
			t.Fatalf("Failed to marshal login request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		mockUsers.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		passwordHash, err := authService.HashPassword("password123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Email:        "test@example.com",
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
		}

		mockUsers.On("FindUserByEmail", mock.Anything, "test@example.com").Return(user, nil)

		loginReq := models.LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpassword",
		}

		body, err := json.Marshal(loginReq)
		if err != nil {
			t.Fatalf("Failed to marshal login request: %v", err)
		}
		req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		// Wrong password and unknown email are indistinguishable
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
		mockUsers.AssertExpectations(t)
	})

	t.Run("missing credentials", func(t *testing.T) {
		mockUsers := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUsers))

		req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBufferString(`{"email":"test@example.com"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
