package response

import (
	"errors"
	"net/http"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/admin"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/face"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/shift"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/validator"
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
	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, admin.ErrAdminInactive):
		Forbidden(w, "Admin account is deactivated")
	case errors.Is(err, admin.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCodeGeneration):
		InternalServerError(w, "Could not generate a unique employee code")

	// Punch domain errors
	case errors.Is(err, punch.ErrEventNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrUnknownPunchType):
		BadRequest(w, "Unknown punch type", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Face image domain errors
	case errors.Is(err, face.ErrImageNotFound):
		NotFound(w, "Face image not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
