package validation

import (
	"errors"
	"fmt"
)

// ErrRequired is returned when a required field is empty.
var ErrRequired = errors.New("is required.")

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: Path `%s` %s", e.Field, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Required checks that the value of the named field is not empty.
func Required(field, value string) error {
	if value == "" {
		return &FieldError{Field: field, Err: ErrRequired}
	}

	return nil
}
