package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wanderlog/internal/model"
)

func seedStory(t *testing.T, repo StoryRepository, userID uuid.UUID, title string, mutate func(*model.TravelStory)) *model.TravelStory {
	t.Helper()

	story := &model.TravelStory{
		Title:           title,
		Story:           "a story",
		VisibleLocation: []string{},
		UserID:          userID,
		CreatedOn:       time.Now(),
		ImageURL:        "http://localhost:8080/assets/placeholder.png",
		VisitedDate:     time.UnixMilli(1700000000000),
	}
	if mutate != nil {
		mutate(story)
	}
	require.NoError(t, repo.Create(context.Background(), story))
	return story
}

func titles(stories []model.TravelStory) []string {
	out := make([]string, len(stories))
	for i, s := range stories {
		out[i] = s.Title
	}
	return out
}

func TestStoryRepository_ListByUser_Ordering(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	// A(fav=false, created=1), B(fav=true, created=2), C(fav=true, created=3)
	seedStory(t, repo, userID, "A", func(s *model.TravelStory) {
		s.IsFavorite = false
		s.CreatedOn = time.UnixMilli(1)
	})
	seedStory(t, repo, userID, "B", func(s *model.TravelStory) {
		s.IsFavorite = true
		s.CreatedOn = time.UnixMilli(2)
	})
	seedStory(t, repo, userID, "C", func(s *model.TravelStory) {
		s.IsFavorite = true
		s.CreatedOn = time.UnixMilli(3)
	})
	seedStory(t, repo, otherID, "someone else's favorite", func(s *model.TravelStory) {
		s.IsFavorite = true
		s.CreatedOn = time.UnixMilli(4)
	})

	stories, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, titles(stories))
}

func TestStoryRepository_FilterByVisitedDate_InclusiveBounds(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	start := time.UnixMilli(1700000000000)
	end := time.UnixMilli(1700500000000)

	seedStory(t, repo, userID, "at start", func(s *model.TravelStory) { s.VisitedDate = start })
	seedStory(t, repo, userID, "inside", func(s *model.TravelStory) { s.VisitedDate = time.UnixMilli(1700250000000) })
	seedStory(t, repo, userID, "at end", func(s *model.TravelStory) { s.VisitedDate = end })
	seedStory(t, repo, userID, "before", func(s *model.TravelStory) { s.VisitedDate = time.UnixMilli(1699999999999) })
	seedStory(t, repo, userID, "after", func(s *model.TravelStory) { s.VisitedDate = time.UnixMilli(1700500000001) })

	stories, err := repo.FilterByVisitedDate(ctx, userID, start, end)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"at start", "inside", "at end"}, titles(stories))
}

func TestStoryRepository_FilterByVisitedDate_FavoritesFirst(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	seedStory(t, repo, userID, "plain", nil)
	seedStory(t, repo, userID, "favorite", func(s *model.TravelStory) { s.IsFavorite = true })

	stories, err := repo.FilterByVisitedDate(ctx, userID,
		time.UnixMilli(1600000000000), time.UnixMilli(1800000000000))
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "favorite", stories[0].Title)
}

func TestStoryRepository_SearchByUser(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	seedStory(t, repo, userID, "Spring break", func(s *model.TravelStory) {
		s.VisibleLocation = []string{"Paris", "Versailles"}
	})
	seedStory(t, repo, userID, "PARIS in winter", nil)
	seedStory(t, repo, userID, "Roman holiday", func(s *model.TravelStory) {
		s.Story = "Comparison with last year's trip."
	})
	seedStory(t, repo, userID, "Lisbon tram lines", nil)
	seedStory(t, repo, otherID, "Paris, but not yours", nil)

	t.Run("matches title, story text, and location entries case-insensitively", func(t *testing.T) {
		stories, err := repo.SearchByUser(ctx, userID, "paris")
		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]string{"Spring break", "PARIS in winter", "Roman holiday"},
			titles(stories))
	})

	t.Run("never returns another user's stories", func(t *testing.T) {
		stories, err := repo.SearchByUser(ctx, otherID, "paris")
		require.NoError(t, err)
		assert.Equal(t, []string{"Paris, but not yours"}, titles(stories))
	})

	t.Run("favorites are ordered first", func(t *testing.T) {
		seedStory(t, repo, userID, "Paris favorite", func(s *model.TravelStory) {
			s.IsFavorite = true
		})
		stories, err := repo.SearchByUser(ctx, userID, "paris")
		require.NoError(t, err)
		require.NotEmpty(t, stories)
		assert.Equal(t, "Paris favorite", stories[0].Title)
	})
}

func TestStoryRepository_OwnershipScoping(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()

	story := seedStory(t, repo, ownerID, "mine", nil)

	t.Run("find", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, story.ID, otherID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		found, err := repo.FindByIDAndUser(ctx, story.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, story.ID, found.ID)
	})

	t.Run("set favorite", func(t *testing.T) {
		assert.ErrorIs(t, repo.SetFavorite(ctx, story.ID, otherID, true), gorm.ErrRecordNotFound)

		require.NoError(t, repo.SetFavorite(ctx, story.ID, ownerID, true))
		found, err := repo.FindByIDAndUser(ctx, story.ID, ownerID)
		require.NoError(t, err)
		assert.True(t, found.IsFavorite)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, story.ID, otherID), gorm.ErrRecordNotFound)

		// the miss above must not have removed the owner's story
		_, err := repo.FindByIDAndUser(ctx, story.ID, ownerID)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, story.ID, ownerID))
		_, err = repo.FindByIDAndUser(ctx, story.ID, ownerID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestStoryRepository_UpdatePersistsFields(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	story := seedStory(t, repo, userID, "before", nil)
	story.Title = "after"
	story.VisibleLocation = []string{"Kyoto", "Arashiyama"}
	require.NoError(t, repo.Update(ctx, story))

	found, err := repo.FindByIDAndUser(ctx, story.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Title)
	assert.Equal(t, []string{"Kyoto", "Arashiyama"}, found.VisibleLocation)
}
