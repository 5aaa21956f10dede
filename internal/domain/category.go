package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category is one of the fixed sections every day entry carries
type Category int

const (
	CategoryWork     Category = iota // 회사
	CategoryPersonal                 // 개인
	CategoryScrap                    // 스크랩
	CategoryIdea                     // 아이디어
)

// Categories lists every category in the order the day template writes them
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryScrap, CategoryIdea}

var categoryNames = [...]string{
	CategoryWork:     "회사",
	CategoryPersonal: "개인",
	CategoryScrap:    "스크랩",
	CategoryIdea:     "아이디어",
}

var categoryAliases = map[string]Category{
	"work":     CategoryWork,
	"personal": CategoryPersonal,
	"scrap":    CategoryScrap,
	"idea":     CategoryIdea,
}

// String returns the heading name used in the document
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Alias returns the ASCII alias accepted on the command line
func (c Category) Alias() string {
	for alias, cat := range categoryAliases {
		if cat == c {
			return alias
		}
	}
	return ""
}

// ParseCategory resolves a heading name or alias to a Category.
// Hangul is NFC-normalized first so headings typed on macOS still match.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if c, ok := categoryByName(name); ok {
		return c, nil
	}
	if c, ok := categoryAliases[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrInvalidCategory, name, CategoryNames())
}

// categoryByName matches a heading name only; aliases are not valid in the document
func categoryByName(name string) (Category, bool) {
	name = norm.NFC.String(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// CategoryNames returns the heading names joined for error and help text
func CategoryNames() string {
	return strings.Join(categoryNames[:], ", ")
}

// newCategoryMap returns a map holding an empty slice for every category
func newCategoryMap() map[Category][]string {
	m := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		m[c] = []string{}
	}
	return m
}
