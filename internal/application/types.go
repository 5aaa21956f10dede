package application

import "dailylog/internal/domain"

// Re-export domain types for use by adapters
type (
	Category  = domain.Category
	DayEntry  = domain.DayEntry
	Log       = domain.Log
	Summary   = domain.Summary
	LinkRef   = domain.LinkRef
	LinkCount = domain.LinkCount
	Issue     = domain.Issue
)

// Categories lists the four sections of a day in template order
var Categories = domain.Categories

// ParseCategory resolves a heading name or English alias
func ParseCategory(name string) (Category, error) {
	return domain.ParseCategory(name)
}

// CategoryNames returns the heading names in template order, comma separated
func CategoryNames() string {
	return domain.CategoryNames()
}
