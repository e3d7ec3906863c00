package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that failed validation; no state was written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an operation on an id that does not exist; no state
	// was written.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries the field errors of a rejected input.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
