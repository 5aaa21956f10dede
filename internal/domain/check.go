package domain

import (
	"fmt"
	"strings"
)

// IssueKind classifies a structural problem found in a document
type IssueKind int

const (
	IssueWeekdayMismatch IssueKind = iota
	IssueMissingCategory
	IssueOutOfOrder
	IssueDuplicateDate
)

func (k IssueKind) String() string {
	switch k {
	case IssueWeekdayMismatch:
		return "weekday"
	case IssueMissingCategory:
		return "missing-category"
	case IssueOutOfOrder:
		return "order"
	case IssueDuplicateDate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Issue is one finding of Check
type Issue struct {
	Kind    IssueKind
	Date    string
	Message string
}

// Check reports entries that break the template invariants: a wrong weekday
// label, a missing category heading, dates that are not strictly descending
// and dates that appear more than once anywhere in the document.
func Check(content string) []Issue {
	var issues []Issue
	log := Parse(content)
	seen := make(map[string]bool)

	for i, e := range log.Entries {
		date := e.DateString()

		if !e.WeekdayConsistent() {
			issues = append(issues, Issue{
				Kind:    IssueWeekdayMismatch,
				Date:    date,
				Message: fmt.Sprintf("labelled (%s), expected (%s)", e.Weekday, WeekdaySymbol(e.Date)),
			})
		}

		present := make(map[Category]bool)
		for _, line := range strings.Split(e.Raw, "\n") {
			if c, _, recognized := headingCategory(line); recognized {
				present[c] = true
			}
		}
		for _, c := range Categories {
			if !present[c] {
				issues = append(issues, Issue{
					Kind:    IssueMissingCategory,
					Date:    date,
					Message: fmt.Sprintf("no '%s' heading", c),
				})
			}
		}

		switch {
		case seen[date]:
			issues = append(issues, Issue{
				Kind:    IssueDuplicateDate,
				Date:    date,
				Message: "appears more than once",
			})
		case i > 0 && log.Entries[i-1].Date.Before(e.Date):
			prev := log.Entries[i-1]
			issues = append(issues, Issue{
				Kind:    IssueOutOfOrder,
				Date:    date,
				Message: fmt.Sprintf("follows older day %s", prev.DateString()),
			})
		}
		seen[date] = true
	}

	return issues
}
