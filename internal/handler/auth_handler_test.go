package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, fullName, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, fullName, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthHandler_CreateAccount(t *testing.T) {
	t.Run("returns the user and token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Jane Doe", "jane@example.com", "secret123").
			Return(&model.User{FullName: "Jane Doe", Email: "jane@example.com"}, "signed-token", nil)

		c, rec := newTestContext(t, http.MethodPost, "/create-account", jsonBody(`{
			"fullName": "Jane Doe", "email": "jane@example.com", "password": "secret123"
		}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.CreateAccount(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Error)
		assert.Equal(t, "Jane Doe", body.User.FullName)
		assert.Equal(t, "signed-token", body.AccessToken)
	})

	t.Run("missing fields are rejected before the service", func(t *testing.T) {
		svc := new(MockAuthService)
		c, rec := newTestContext(t, http.MethodPost, "/create-account", jsonBody(`{"email": "jane@example.com"}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.CreateAccount(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Jane Doe", "jane@example.com", "secret123").
			Return(nil, "", apperrors.ErrEmailExists)

		c, rec := newTestContext(t, http.MethodPost, "/create-account", jsonBody(`{
			"fullName": "Jane Doe", "email": "jane@example.com", "password": "secret123"
		}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.CreateAccount(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Error)
		assert.Equal(t, "email already exists", body.Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("unknown email maps to 400", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "nobody@example.com", "secret123").
			Return(nil, "", apperrors.ErrUserNotFound)

		c, rec := newTestContext(t, http.MethodPost, "/login", jsonBody(`{
			"email": "nobody@example.com", "password": "secret123"
		}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password maps to 400", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "jane@example.com", "wrong").
			Return(nil, "", apperrors.ErrInvalidPassword)

		c, rec := newTestContext(t, http.MethodPost, "/login", jsonBody(`{
			"email": "jane@example.com", "password": "wrong"
		}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns the user and token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "jane@example.com", "secret123").
			Return(&model.User{FullName: "Jane Doe", Email: "jane@example.com"}, "signed-token", nil)

		c, rec := newTestContext(t, http.MethodPost, "/login", jsonBody(`{
			"email": "jane@example.com", "password": "secret123"
		}`))

		h := NewAuthHandler(svc)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "signed-token", body.AccessToken)
	})
}

func TestAuthHandler_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the stored user", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("CurrentUser", mock.Anything, userID).
			Return(&model.User{ID: userID, FullName: "Jane Doe", Email: "jane@example.com"}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/get-user", nil)
		authenticate(c, userID)

		h := NewAuthHandler(svc)
		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "jane@example.com")
	})

	t.Run("missing user terminates as unauthorized", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("CurrentUser", mock.Anything, userID).Return(nil, apperrors.ErrUserNotFound)

		c, rec := newTestContext(t, http.MethodGet, "/get-user", nil)
		authenticate(c, userID)

		h := NewAuthHandler(svc)
		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no token terminates as unauthorized", func(t *testing.T) {
		svc := new(MockAuthService)
		c, rec := newTestContext(t, http.MethodGet, "/get-user", nil)

		h := NewAuthHandler(svc)
		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
