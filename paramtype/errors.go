package paramtype

import (
	"errors"
	"fmt"
)

// Reader errors. They are always delivered wrapped in a *NameError.
var (
	ErrInvalidName   = errors.New("invalid type name")
	ErrInvalidNumber = errors.New("invalid number")
	ErrTooDeep       = errors.New("type nesting too deep")
)

// NameError records the type name that failed to parse.
type NameError struct {
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e *NameError) Unwrap() error {
	return e.Err
}

func invalidName(name string) error {
	return &NameError{Name: name, Err: ErrInvalidName}
}

func invalidNumber(name string, cause error) error {
	if cause == nil {
		return &NameError{Name: name, Err: ErrInvalidNumber}
	}

	return &NameError{Name: name, Err: fmt.Errorf("%w: %v", ErrInvalidNumber, cause)}
}
