package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the validate tags of a struct and returns an error listing every failed field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}

	var details strings.Builder
	for _, fieldErr := range validationErrors {
		if details.Len() > 0 {
			details.WriteString("; ")
		}

		switch fieldErr.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fieldErr.Field())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", fieldErr.Field(), fieldErr.Param())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", fieldErr.Field(), fieldErr.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", fieldErr.Field(), fieldErr.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fieldErr.Field(), fieldErr.Tag())
		}
	}

	return errors.New(details.String())
}
