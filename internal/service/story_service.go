package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/model"
	"wanderlog/internal/repository"
)

// StoryInput carries the client-supplied fields of a travel story. VisitedDate
// is epoch milliseconds on the wire.
type StoryInput struct {
	Title           string
	Story           string
	VisibleLocation []string
	ImageURL        string
	VisitedDate     int64
}

// StoryService handles CRUD over a user's travel stories. Every operation is
// scoped to the authenticated user.
type StoryService interface {
	Add(ctx context.Context, userID uuid.UUID, in StoryInput) (*model.TravelStory, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.TravelStory, error)
	Edit(ctx context.Context, userID, storyID uuid.UUID, in StoryInput) (*model.TravelStory, error)
	Delete(ctx context.Context, userID, storyID uuid.UUID) error
	SetFavorite(ctx context.Context, userID, storyID uuid.UUID, isFavorite bool) (*model.TravelStory, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]model.TravelStory, error)
	FilterByDate(ctx context.Context, userID uuid.UUID, startMs, endMs int64) ([]model.TravelStory, error)
}

type storyService struct {
	stories        repository.StoryRepository
	uploads        UploadService
	placeholderURL string
}

// NewStoryService creates a story service. placeholderURL is substituted when
// a story is edited without an image.
func NewStoryService(stories repository.StoryRepository, uploads UploadService, placeholderURL string) StoryService {
	return &storyService{
		stories:        stories,
		uploads:        uploads,
		placeholderURL: placeholderURL,
	}
}

// Add persists a new story for the user with CreatedOn set to now.
func (s *storyService) Add(ctx context.Context, userID uuid.UUID, in StoryInput) (*model.TravelStory, error) {
	story := &model.TravelStory{
		Title:           in.Title,
		Story:           in.Story,
		VisibleLocation: in.VisibleLocation,
		UserID:          userID,
		CreatedOn:       time.Now(),
		ImageURL:        in.ImageURL,
		VisitedDate:     time.UnixMilli(in.VisitedDate),
	}

	if err := s.stories.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("create story: %w", err)
	}
	return story, nil
}

// List returns the user's stories, favorites first, newest first.
func (s *storyService) List(ctx context.Context, userID uuid.UUID) ([]model.TravelStory, error) {
	return s.stories.ListByUser(ctx, userID)
}

// Edit overwrites the mutable fields of an owned story. An empty image URL is
// replaced with the placeholder image.
func (s *storyService) Edit(ctx context.Context, userID, storyID uuid.UUID, in StoryInput) (*model.TravelStory, error) {
	story, err := s.findOwned(ctx, userID, storyID)
	if err != nil {
		return nil, err
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = s.placeholderURL
	}

	story.Title = in.Title
	story.Story = in.Story
	story.VisibleLocation = in.VisibleLocation
	story.ImageURL = imageURL
	story.VisitedDate = time.UnixMilli(in.VisitedDate)

	if err := s.stories.Update(ctx, story); err != nil {
		return nil, fmt.Errorf("update story: %w", err)
	}
	return story, nil
}

// Delete removes an owned story, then best-effort removes its uploaded image
// file. A failed file delete is logged and does not fail the operation.
func (s *storyService) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	story, err := s.findOwned(ctx, userID, storyID)
	if err != nil {
		return err
	}

	if err := s.stories.Delete(ctx, storyID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStoryNotFound
		}
		return fmt.Errorf("delete story: %w", err)
	}

	// Only uploaded files are removed; placeholder and asset URLs stay.
	if strings.Contains(story.ImageURL, "/uploads/") {
		if err := s.uploads.Delete(ctx, story.ImageURL); err != nil {
			log.Printf("delete image for story %s: %v", storyID, err)
		}
	}
	return nil
}

// SetFavorite updates the favorite flag of an owned story.
func (s *storyService) SetFavorite(ctx context.Context, userID, storyID uuid.UUID, isFavorite bool) (*model.TravelStory, error) {
	if err := s.stories.SetFavorite(ctx, storyID, userID, isFavorite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("set favorite: %w", err)
	}
	return s.findOwned(ctx, userID, storyID)
}

// Search matches the query case-insensitively against title, story text, and
// location entries of the user's stories.
func (s *storyService) Search(ctx context.Context, userID uuid.UUID, query string) ([]model.TravelStory, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrQueryRequired
	}
	return s.stories.SearchByUser(ctx, userID, query)
}

// FilterByDate returns the user's stories visited within the inclusive
// [startMs, endMs] range.
func (s *storyService) FilterByDate(ctx context.Context, userID uuid.UUID, startMs, endMs int64) ([]model.TravelStory, error) {
	start := time.UnixMilli(startMs)
	end := time.UnixMilli(endMs)
	return s.stories.FilterByVisitedDate(ctx, userID, start, end)
}

func (s *storyService) findOwned(ctx context.Context, userID, storyID uuid.UUID) (*model.TravelStory, error) {
	story, err := s.stories.FindByIDAndUser(ctx, storyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("find story: %w", err)
	}
	return story, nil
}
