package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TravelStory is a single journal entry owned by a user. VisibleLocation is
// stored as a JSON column so the store-level search can match place names.
type TravelStory struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Story           string    `json:"story" gorm:"type:text;not null"`
	VisibleLocation []string  `json:"visibleLocation" gorm:"type:text;serializer:json"`
	IsFavorite      bool      `json:"isFavorite" gorm:"default:false;index"`
	UserID          uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedOn       time.Time `json:"createdOn"`
	ImageURL        string    `json:"imageUrl" gorm:"size:512;not null"`
	VisitedDate     time.Time `json:"visitedDate" gorm:"not null;index"`
}

// BeforeCreate sets UUID before creating the record.
func (s *TravelStory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
