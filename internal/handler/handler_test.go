package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wanderlog/internal/auth"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newTestContext(t *testing.T, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate attaches a parsed JWT for userID, as the middleware would.
func authenticate(c echo.Context, userID uuid.UUID) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{UserID: userID.String()})
	c.Set("user", token)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
