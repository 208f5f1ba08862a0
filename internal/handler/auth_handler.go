package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/model"
	"wanderlog/internal/service"
)

// AuthHandler handles account and session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateAccountRequest represents a registration request.
type CreateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// AuthResponse represents a successful registration or login.
type AuthResponse struct {
	Error       bool         `json:"error"`
	User        UserResponse `json:"user"`
	Message     string       `json:"message"`
	AccessToken string       `json:"accessToken"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{FullName: user.FullName, Email: user.Email}
}

// CreateAccount godoc
// @Summary Create a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /create-account [post]
func (h *AuthHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err)
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		User:        toUserResponse(user),
		Message:     "Account created successfully",
		AccessToken: token,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err)
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		User:        toUserResponse(user),
		Message:     "Login successful",
		AccessToken: token,
	})
}

// GetUser godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /get-user [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		// A token whose user no longer exists ends the request as unauthorized.
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":    user,
		"message": "",
	})
}
