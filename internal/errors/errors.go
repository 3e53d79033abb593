package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when registering an email that is taken.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername is returned when registering a username that is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned on login for an unknown email or a wrong
	// password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoteNotFound is returned when a note does not exist or is owned by
	// another user; the two cases are indistinguishable to the caller.
	ErrNoteNotFound = errors.New("note not found")
	// ErrImageNotFound is returned when an image does not exist or its note is
	// owned by another user.
	ErrImageNotFound = errors.New("image not found")
	// ErrNotAnImage is returned when an upload declares a non-image mime type.
	ErrNotAnImage = errors.New("not an image, please upload only images")
	// ErrNoFile is returned when an upload request carries no file part.
	ErrNoFile = errors.New("no image uploaded")
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
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

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// scrubbed 500 so internal details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrNotAnImage),
		errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrImageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
