package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("invalid date range")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// YearNotFoundError reports a year document that does not exist in the vault
type YearNotFoundError struct {
	Year int
	Path string
}

func (e *YearNotFoundError) Error() string {
	return fmt.Sprintf("no log for %d: %s does not exist", e.Year, e.Path)
}

func (e *YearNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
