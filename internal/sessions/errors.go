package sessions

import (
	"errors"
	"net/http"
)

// Domain errors for session operations.
var (
	ErrNotFound        = errors.New("session not found")
	ErrDuplicate       = errors.New("session already exists")
	ErrInvalidFileType = errors.New("only PDF files are supported")
	ErrMissingMetadata = errors.New("missing required metadata")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrInvalidFile     = errors.New("invalid file")
	ErrNotTerminal     = errors.New("session is still processing")
	ErrAlreadyFinished = errors.New("session already finished")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrMissingMetadata),
		errors.Is(err, ErrInvalidFile):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrNotTerminal),
		errors.Is(err, ErrAlreadyFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
