package handler

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderlog/internal/auth"
	apperrors "wanderlog/internal/errors"
)

// errorJSON writes the mapped status and the standard error body for err.
func errorJSON(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

// validationJSON writes a 400 listing every failing field of a bound request.
func validationJSON(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: true, Message: err.Error()})
}

// userIDFromContext returns the authenticated user id attached by the JWT
// middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("missing token in context")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	return auth.UserIDFromClaims(claims)
}
