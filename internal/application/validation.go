package application

import (
	"fmt"
	"strings"
	"time"

	"dailylog/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateSingleLine rejects values that would span several document lines.
// Surrounding whitespace, trailing newlines included, is ignored.
func ValidateSingleLine(fieldName, value string) error {
	if strings.ContainsAny(strings.TrimSpace(value), "\r\n") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a single line", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "endDate" -> "end date")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"startDate": "start date",
		"endDate":   "end date",
		"item":      "item",
		"category":  "category",
		"query":     "query",
		"target":    "link target",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateCategory resolves a category name. The returned error is a
// ValidationError that also matches domain.ErrInvalidCategory.
func ValidateCategory(fieldName, name string) (domain.Category, error) {
	c, err := domain.ParseCategory(name)
	if err != nil {
		return 0, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown %s %q (available: %s)", formatFieldName(fieldName), strings.TrimSpace(name), domain.CategoryNames()),
			Err:     err,
		}
	}
	return c, nil
}

// ValidateRange checks that start is not after end
func ValidateRange(start, end time.Time) error {
	if start.After(end) {
		return &ValidationError{
			Field:   "startDate",
			Message: fmt.Sprintf("start date %s is after end date %s", domain.FormatDate(start), domain.FormatDate(end)),
			Err:     ErrInvalidRange,
		}
	}
	return nil
}
