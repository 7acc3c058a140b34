package model

import (
	"errors"
	"strings"
)

// ErrMissingRequiredField is the sentinel wrapped by every ValidationError.
var ErrMissingRequiredField = errors.New("missing required field")

// ValidationError reports which required pot fields were empty after
// trimming. It is the only error the catalog raises on Add.
type ValidationError struct {
	Fields []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrMissingRequiredField.Error()
	}
	return ErrMissingRequiredField.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match ErrMissingRequiredField.
func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredField
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
