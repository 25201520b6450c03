package models

import (
	"errors"
	"fmt"
)

// Parameter decoding errors. They are always delivered wrapped in a *FieldError.
var (
	ErrMissingField     = errors.New("missing field")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrMissingTypeField = errors.New("missing tuple component field")
)

// FieldError records the parameter object key that caused a decoding failure.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v `%s`", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func duplicateField(field string) error {
	return &FieldError{Field: field, Err: ErrDuplicateField}
}

func missingTypeField() error {
	return &FieldError{Field: fieldType, Err: ErrMissingTypeField}
}
