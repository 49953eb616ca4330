package exceptions

import (
	"errors"
	"fmt"
	"mindfit-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator.v10 field error into a
// client-readable message. Anything else falls back to the generic message.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", field)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", field, fieldError.Param())
	case "password":
		return "Password must be at least 8 characters with an uppercase letter and a special character"
	case "phone_number":
		return fmt.Sprintf("Field '%s' must be an international phone number, e.g. +6281234567890", field)
	case "clock_time":
		return fmt.Sprintf("Field '%s' must be a HH:MM time, e.g. 09:00", field)
	case "mood_scale":
		return fmt.Sprintf("Field '%s' must be an integer between 1 and 10", field)
	case "datetime":
		return fmt.Sprintf("Field '%s' must be a date formatted as %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("Field '%s' is invalid", field)
	}
}
