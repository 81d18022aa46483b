package solutions

import (
	"errors"
	"net/http"
)

// Domain errors for solution operations.
var (
	ErrNotFound  = errors.New("solution not found")
	ErrDuplicate = errors.New("solution already exists")
	ErrNoRecords = errors.New("cannot publish a solution with no records")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNoRecords):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
