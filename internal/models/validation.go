package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// NewValidator returns a validator with the custom tags used by the models registered
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("known_action", func(fl validator.FieldLevel) bool {
		return IsKnownAction(fl.Field().String())
	})
	return v
}

// ValidatePredictions checks every prediction in the list
func ValidatePredictions(v *validator.Validate, predictions []Prediction) error {
	if len(predictions) == 0 {
		return fmt.Errorf("prediction list is empty")
	}
	for i := range predictions {
		if err := v.Struct(&predictions[i]); err != nil {
			return fmt.Errorf("prediction %d is invalid: %w", i, err)
		}
	}
	return nil
}

// FormatValidationErrors converts validator output into response entries.
// JSON type mismatches yield a single "type" entry; other errors a generic one.
func FormatValidationErrors(err error) []ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []ValidationError{{
			Field:   field,
			Tag:     "type",
			Value:   typeErr.Value,
			Message: fmt.Sprintf("%s must not be a JSON %s", field, typeErr.Value),
		}}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ValidationError{{Message: err.Error()}}
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		var message string

		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			if fe.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
			} else {
				message = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
			}
		case "max":
			if fe.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must contain at most %s item(s)", fe.Field(), fe.Param())
			} else {
				message = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
			}
		case "known_action":
			message = fmt.Sprintf("%s is not a known action", fe.Field())
		default:
			message = fmt.Sprintf("%s is invalid", fe.Field())
		}

		result = append(result, ValidationError{
			Field:   fe.Namespace(),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: message,
		})
	}

	return result
}
