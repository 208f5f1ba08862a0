package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wanderlog/internal/model"
)

// StoryRepository defines travel story persistence operations. Every query is
// scoped by the owning user id: a story is never visible to another user.
type StoryRepository interface {
	Create(ctx context.Context, story *model.TravelStory) error
	Update(ctx context.Context, story *model.TravelStory) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SetFavorite(ctx context.Context, id, userID uuid.UUID, isFavorite bool) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.TravelStory, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TravelStory, error)
	SearchByUser(ctx context.Context, userID uuid.UUID, query string) ([]model.TravelStory, error)
	FilterByVisitedDate(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.TravelStory, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository builds a GORM-backed repository.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *model.TravelStory) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) Update(ctx context.Context, story *model.TravelStory) error {
	return r.db.WithContext(ctx).Save(story).Error
}

func (r *storyRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TravelStory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *storyRepository) SetFavorite(ctx context.Context, id, userID uuid.UUID, isFavorite bool) error {
	res := r.db.WithContext(ctx).Model(&model.TravelStory{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_favorite", isFavorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *storyRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.TravelStory, error) {
	var story model.TravelStory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&story).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// ListByUser returns the user's stories, favorites first, newest first within
// each group.
func (r *storyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TravelStory, error) {
	var stories []model.TravelStory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_favorite DESC, created_on DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// SearchByUser matches the query as a case-insensitive substring of the title,
// the story text, or any serialized location entry.
func (r *storyRepository) SearchByUser(ctx context.Context, userID uuid.UUID, query string) ([]model.TravelStory, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var stories []model.TravelStory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(title) LIKE ? OR LOWER(story) LIKE ? OR LOWER(visible_location) LIKE ?",
			pattern, pattern, pattern).
		Order("is_favorite DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// FilterByVisitedDate returns stories visited within [start, end], bounds
// inclusive.
func (r *storyRepository) FilterByVisitedDate(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.TravelStory, error) {
	var stories []model.TravelStory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND visited_date BETWEEN ? AND ?", userID, start, end).
		Order("is_favorite DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}
