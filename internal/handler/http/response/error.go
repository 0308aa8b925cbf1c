package response

import (
	"errors"
	"net/http"

	"github.com/worktrace/worktrace-backend-go/internal/domain/auth"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Session has been logged out")

	// Work log domain errors
	case errors.Is(err, worklog.ErrWorkUpdateNotFound):
		NotFound(w, "Work update not found")
	case errors.Is(err, worklog.ErrImageNotFound):
		NotFound(w, "Image not found")
	case errors.Is(err, worklog.ErrInvalidImageURL):
		UnprocessableEntity(w, "Image URL does not resolve to a stored blob")
	case errors.Is(err, worklog.ErrImageMetadataOrphaned):
		InternalServerError(w, "Image removed from storage but its record could not be deleted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
