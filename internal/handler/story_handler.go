package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/service"
)

// StoryHandler handles travel story endpoints.
type StoryHandler struct {
	storyService service.StoryService
}

// NewStoryHandler creates a new story handler.
func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// AddStoryRequest represents a new travel story.
type AddStoryRequest struct {
	Title           string   `json:"title" validate:"required"`
	Story           string   `json:"story" validate:"required"`
	VisibleLocation []string `json:"visibleLocation" validate:"required"`
	ImageURL        string   `json:"imageUrl" validate:"required"`
	VisitedDate     int64    `json:"visitedDate" validate:"required"`
}

// EditStoryRequest represents a full-field story edit. ImageURL may be empty;
// the placeholder image is substituted.
type EditStoryRequest struct {
	Title           string   `json:"title" validate:"required"`
	Story           string   `json:"story" validate:"required"`
	VisibleLocation []string `json:"visibleLocation" validate:"required"`
	ImageURL        string   `json:"imageUrl"`
	VisitedDate     int64    `json:"visitedDate" validate:"required"`
}

// FavoriteRequest represents a favorite flag update.
type FavoriteRequest struct {
	IsFavorite *bool `json:"isFavorite" validate:"required"`
}

// AddStory godoc
// @Summary Add a travel story
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddStoryRequest true "Story fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /add-travel-story [post]
func (h *StoryHandler) AddStory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	var req AddStoryRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err)
	}

	story, err := h.storyService.Add(c.Request().Context(), userID, service.StoryInput{
		Title:           req.Title,
		Story:           req.Story,
		VisibleLocation: req.VisibleLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     req.VisitedDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"story":   story,
		"message": "Travel story added successfully",
	})
}

// GetAllStories godoc
// @Summary List the user's travel stories, favorites first, newest first
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /get-all-stories [get]
func (h *StoryHandler) GetAllStories(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	stories, err := h.storyService.List(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"stories": stories})
}

// EditStory godoc
// @Summary Overwrite a travel story's fields
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Param request body EditStoryRequest true "Story fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /edit-story/{id} [put]
func (h *StoryHandler) EditStory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.ErrStoryNotFound)
	}

	var req EditStoryRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err)
	}

	story, err := h.storyService.Edit(c.Request().Context(), userID, storyID, service.StoryInput{
		Title:           req.Title,
		Story:           req.Story,
		VisibleLocation: req.VisibleLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     req.VisitedDate,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"story":   story,
		"message": "Travel story updated successfully",
	})
}

// DeleteStory godoc
// @Summary Delete a travel story and its uploaded image
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /delete-story/{id} [delete]
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.ErrStoryNotFound)
	}

	if err := h.storyService.Delete(c.Request().Context(), userID, storyID); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Travel story deleted successfully",
	})
}

// UpdateIsFavorite godoc
// @Summary Update a story's favorite flag
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Param request body FavoriteRequest true "Favorite flag"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /update-is-favorite/{id} [put]
func (h *StoryHandler) UpdateIsFavorite(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorJSON(c, apperrors.ErrStoryNotFound)
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err)
	}

	story, err := h.storyService.SetFavorite(c.Request().Context(), userID, storyID, *req.IsFavorite)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"story":   story,
		"message": "Favorite updated successfully",
	})
}

// Search godoc
// @Summary Search the user's stories by title, text, or location
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /search [get]
func (h *StoryHandler) Search(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	stories, err := h.storyService.Search(c.Request().Context(), userID, c.QueryParam("query"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"stories": stories})
}

// FilterByDate godoc
// @Summary Filter the user's stories by visited date range
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param startDate query int true "Range start, epoch milliseconds"
// @Param endDate query int true "Range end, epoch milliseconds"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /travel-stories/filter [get]
func (h *StoryHandler) FilterByDate(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: true, Message: "unauthorized"})
	}

	startMs, err := strconv.ParseInt(c.QueryParam("startDate"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: true, Message: "startDate must be epoch milliseconds"})
	}
	endMs, err := strconv.ParseInt(c.QueryParam("endDate"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: true, Message: "endDate must be epoch milliseconds"})
	}

	stories, err := h.storyService.FilterByDate(c.Request().Context(), userID, startMs, endMs)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"stories": stories})
}
