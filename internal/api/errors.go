package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/mocksy/internal/authform"
	"github.com/phrazzld/mocksy/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidMode):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return "Please correct the highlighted fields"
	case errors.Is(err, domain.ErrInvalidMode):
		return "Page not found"
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return "Your previous submission is still being processed"
	case errors.Is(err, authform.ErrMissingDependency):
		return "The form is temporarily unavailable"
	default:
		return "An unexpected error occurred"
	}
}
