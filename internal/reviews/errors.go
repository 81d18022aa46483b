package reviews

import (
	"errors"
	"net/http"
)

// Domain errors for review operations.
var (
	ErrNotFound        = errors.New("review not found")
	ErrDuplicate       = errors.New("review already exists")
	ErrRecordNotFound  = errors.New("record index out of range")
	ErrEmptyRecord     = errors.New("question and answer must not be empty")
	ErrVersionConflict = errors.New("review was modified since it was read")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyRecord):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
