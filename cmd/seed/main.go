package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wanderlog/internal/config"
	"wanderlog/internal/db"
	"wanderlog/internal/model"
	"wanderlog/internal/repository"
)

const (
	demoEmail    = "demo@wanderlog.local"
	demoPassword = "password123"
)

var demoStories = []model.TravelStory{
	{
		Title:           "A week in Kyoto",
		Story:           "Temples at dawn, matcha in the afternoon, and the quiet of the Philosopher's Path.",
		VisibleLocation: []string{"Kyoto", "Arashiyama"},
		IsFavorite:      true,
		VisitedDate:     time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		Title:           "Lisbon tram lines",
		Story:           "Rode the 28 end to end and got lost in Alfama on purpose.",
		VisibleLocation: []string{"Lisbon"},
		VisitedDate:     time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		Title:           "Patagonia on foot",
		Story:           "Four days around Torres del Paine. The wind is not a metaphor there.",
		VisibleLocation: []string{"Torres del Paine", "Puerto Natales"},
		VisitedDate:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.TravelStory{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	storyRepo := repository.NewStoryRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	switch {
	case err == nil:
		log.Printf("Demo user %s already exists, skipping user creation", demoEmail)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{
			FullName:     "Demo Traveler",
			Email:        demoEmail,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (password: %s)", demoEmail, demoPassword)
	default:
		log.Fatalf("Failed to look up demo user: %v", err)
	}

	existing, err := storyRepo.ListByUser(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list existing stories: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d stories, nothing to seed", len(existing))
		return
	}

	placeholder := cfg.PlaceholderImageURL()
	seeded := 0
	for _, s := range demoStories {
		story := s
		story.UserID = user.ID
		story.CreatedOn = time.Now()
		story.ImageURL = placeholder
		if err := storyRepo.Create(ctx, &story); err != nil {
			log.Fatalf("Failed to seed story %q: %v", story.Title, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Stories created: %d", seeded)
}
