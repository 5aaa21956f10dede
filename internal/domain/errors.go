package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrCategoryNotFound = errors.New("category heading not found")
	ErrUnsupportedDate  = errors.New("unsupported date format")
)

// MissingCategoryError reports a day whose text lacks one of the category headings
type MissingCategoryError struct {
	Date     string
	Category Category
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("%s has no '%s' heading", e.Date, e.Category)
}

func (e *MissingCategoryError) Is(target error) bool {
	return target == ErrCategoryNotFound
}
