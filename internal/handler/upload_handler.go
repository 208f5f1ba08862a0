package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/service"
)

// UploadHandler handles image upload and deletion endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// ImageUpload godoc
// @Summary Upload a jpeg or png image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /image-upload [post]
func (h *UploadHandler) ImageUpload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return errorJSON(c, apperrors.ErrNoFileUploaded)
	}

	imageURL, err := h.uploadService.Store(c.Request().Context(), file)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"imageUrl": imageURL,
	})
}

// DeleteImage godoc
// @Summary Delete an uploaded image by its URL
// @Tags images
// @Produce json
// @Param imageUrl query string true "Image URL returned by upload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /delete-image [delete]
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	if err := h.uploadService.Delete(c.Request().Context(), c.QueryParam("imageUrl")); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Image deleted successfully",
	})
}
