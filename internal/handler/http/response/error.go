package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/company-profiles/internal/domain/auth"
	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrInvalidIdentifier):
		BadRequest(w, "Company identifier is required", nil)
	case errors.Is(err, company.ErrEmptyCompanyName):
		BadRequest(w, "Company name is required", nil)
	case errors.Is(err, company.ErrInvalidURLScheme):
		BadRequest(w, "Scheme must be one of: pretty, query", nil)

	// Listing domain errors
	case errors.Is(err, listing.ErrCompanyNameRequired):
		BadRequest(w, "Company name is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
