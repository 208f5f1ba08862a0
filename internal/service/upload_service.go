package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	apperrors "wanderlog/internal/errors"
	"wanderlog/internal/storage"
)

// UploadService stores uploaded images and deletes them by URL.
type UploadService interface {
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

type uploadService struct {
	files   storage.FileStore
	baseURL string
}

// NewUploadService creates an upload service serving files under baseURL/uploads.
func NewUploadService(files storage.FileStore, baseURL string) UploadService {
	return &uploadService{
		files:   files,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Store accepts a jpeg or png upload, persists it under a time-based name
// preserving the original extension, and returns its public URL.
func (s *uploadService) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFileUploaded
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", apperrors.ErrUnsupportedImageType
	}

	// Only image extensions are ever stored; anything else (or a missing
	// extension) is replaced with one derived from the content type, so a
	// crafted filename cannot make the static server hand out other types.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		if contentType == "image/png" {
			ext = ".png"
		} else {
			ext = ".jpg"
		}
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := s.files.Save(ctx, name, src); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Delete removes the file a previously returned URL points at. Deleting the
// same URL twice fails with ErrFileNotFound on the second call.
func (s *uploadService) Delete(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return apperrors.ErrImageURLRequired
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.ErrImageURLRequired
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return apperrors.ErrImageURLRequired
	}

	return s.files.Remove(ctx, name)
}
