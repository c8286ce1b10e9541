// Package apperror defines the error taxonomy shared by the store, the
// serializer and the HTTP layer.
package apperror

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a lookup by id yields nothing.
	ErrNotFound = errors.New("record not found")

	// ErrIntegrity is returned when a write would break a foreign key or a
	// uniqueness constraint.
	ErrIntegrity = errors.New("integrity violation")

	// ErrValidation is returned for malformed or incomplete request input.
	ErrValidation = errors.New("validation failed")
)

// StatusCode maps an error from the taxonomy to the HTTP status the API
// answers with. Unknown errors are internal server errors.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
