package models

import "fmt"

// MissingFieldError is returned by Validate when a required field is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("path %q is required", e.Field)
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}
