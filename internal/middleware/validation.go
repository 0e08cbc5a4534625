package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/devika/facultyhub/internal/app/models/dto"
)

// TranslateBindingError converts a gin binding failure into an error
// detail with the first offending field named
func TranslateBindingError(err error) *dto.ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).
			WithField(first.Field())
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
