package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailExists is returned when registering with an email already in use.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password hash comparison fails.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrStoryNotFound is returned when no travel story matches the id for the user.
	ErrStoryNotFound = errors.New("travel story not found")
	// ErrNoFileUploaded is returned when an upload request carries no file.
	ErrNoFileUploaded = errors.New("no image file uploaded")
	// ErrUnsupportedImageType is returned for any content type other than jpeg or png.
	ErrUnsupportedImageType = errors.New("only jpeg and png images are allowed")
	// ErrImageURLRequired is returned when a delete request carries no imageUrl.
	ErrImageURLRequired = errors.New("imageUrl parameter is required")
	// ErrFileNotFound is returned when the referenced image file is not on disk.
	ErrFileNotFound = errors.New("image file not found")
	// ErrQueryRequired is returned when a search request carries no query.
	ErrQueryRequired = errors.New("search query is required")
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   true,
		Message: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrNoFileUploaded),
		errors.Is(err, ErrUnsupportedImageType),
		errors.Is(err, ErrImageURLRequired),
		errors.Is(err, ErrQueryRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrStoryNotFound), errors.Is(err, ErrFileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
