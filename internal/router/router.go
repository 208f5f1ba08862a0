package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wanderlog/internal/auth"
	"wanderlog/internal/config"
	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	storyHandler *handler.StoryHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Static file serving for uploaded images and bundled assets
	e.Static("/uploads", cfg.UploadsDir)
	e.Static("/assets", cfg.AssetsDir)

	// Public routes
	e.POST("/create-account", authHandler.CreateAccount)
	e.POST("/login", authHandler.Login)
	e.DELETE("/delete-image", uploadHandler.DeleteImage)

	// Secured routes (require JWT authentication)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error:   true,
				Message: "invalid or expired token",
			})
		},
	}))

	secured.GET("/get-user", authHandler.GetUser)
	secured.POST("/image-upload", uploadHandler.ImageUpload)

	// Story routes
	secured.POST("/add-travel-story", storyHandler.AddStory)
	secured.GET("/get-all-stories", storyHandler.GetAllStories)
	secured.PUT("/edit-story/:id", storyHandler.EditStory)
	secured.DELETE("/delete-story/:id", storyHandler.DeleteStory)
	secured.PUT("/update-is-favorite/:id", storyHandler.UpdateIsFavorite)
	secured.GET("/search", storyHandler.Search)
	secured.GET("/travel-stories/filter", storyHandler.FilterByDate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
