package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// MinSearchQuery is the shortest query, in characters, that is searched
const MinSearchQuery = 2

// SearchHit is one matching item with its relevance score
type SearchHit struct {
	Date     string
	Category domain.Category
	Line     string
	Text     string // item text without bullet marker and timestamp
	Score    int
}

// SearchCommand fuzzy-searches the items of every year document
type SearchCommand struct {
	store ports.LogStore
	Query string
	Limit int // 0 means no limit
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.LogStore, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted hits
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchHit, error) {
	query := strings.TrimSpace(c.Query)
	if utf8.RuneCountInString(query) < MinSearchQuery {
		return nil, nil
	}

	years, err := c.store.Years()
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	var candidates []SearchHit
	for _, year := range years {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, log, err := loadYear(c.store, year)
		if err != nil {
			return nil, err
		}
		for _, e := range log.Entries {
			for _, cat := range domain.Categories {
				for _, line := range e.FilledItems(cat) {
					candidates = append(candidates, SearchHit{
						Date:     e.DateString(),
						Category: cat,
						Line:     line,
						Text:     ItemText(line),
					})
				}
			}
		}
	}

	hits := FuzzySort(candidates, query)
	if c.Limit > 0 && len(hits) > c.Limit {
		hits = hits[:c.Limit]
	}
	return hits, nil
}

// ItemText strips the bullet marker and a leading timestamp from an item line
func ItemText(line string) string {
	text := strings.TrimSpace(line)
	text = strings.TrimSpace(strings.TrimPrefix(text, domain.BulletMarker))
	if len(text) >= len(domain.TimestampLayout) {
		if _, err := time.Parse(domain.TimestampLayout, text[:len(domain.TimestampLayout)]); err == nil {
			text = strings.TrimSpace(text[len(domain.TimestampLayout):])
		}
	}
	return text
}

// FuzzyScore calculates a relevance score for how well target matches query.
// Matching is rune based so Hangul queries score like ASCII ones.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	t := []rune(target)
	q := []rune(query)
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(t) && queryIdx < len(q); i++ {
		if t[i] != q[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive chars
		}
		if i == 0 {
			score += 15 // start of string
		}
		if i > 0 && isSeparator(t[i-1]) {
			score += 10 // after separator
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(q) {
		return score
	}
	return 0
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '.' || r == '-' || r == '[' || r == '/'
}

// FuzzySort scores candidates against the query, drops non-matches and
// orders the rest by score, newest date first on ties
func FuzzySort(candidates []SearchHit, query string) []SearchHit {
	scored := make([]SearchHit, 0, len(candidates))

	for _, h := range candidates {
		best := FuzzyScore(h.Text, query)
		for _, link := range domain.ExtractLinks(h.Text) {
			best = max(best, FuzzyScore(domain.LinkTarget(link), query))
		}
		if best > 0 {
			h.Score = best
			scored = append(scored, h)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Date > scored[j].Date
	})

	return scored
}
