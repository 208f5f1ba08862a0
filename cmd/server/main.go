package main

import (
	"log"
	"net/http"

	_ "wanderlog/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wanderlog/internal/auth"
	"wanderlog/internal/config"
	"wanderlog/internal/db"
	"wanderlog/internal/handler"
	"wanderlog/internal/model"
	"wanderlog/internal/repository"
	"wanderlog/internal/router"
	"wanderlog/internal/service"
	"wanderlog/internal/storage"
)

// @title Travel Journal API
// @version 1.0
// @description Travel journal backend with JWT authentication, story CRUD, and image uploads.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.TravelStory{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	fileStore, err := storage.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("file store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	storyRepo := repository.NewStoryRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	uploadService := service.NewUploadService(fileStore, cfg.BaseURL)
	storyService := service.NewStoryService(storyRepo, uploadService, cfg.PlaceholderImageURL())

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	storyHandler := handler.NewStoryHandler(storyService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Register routes
	router.Register(e, cfg, authHandler, storyHandler, uploadHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.BaseURL)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
