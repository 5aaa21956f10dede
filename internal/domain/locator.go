package domain

import "time"

// Insertion is where a new day block goes in a document
type Insertion struct {
	Index       int    // zero-based line index to insert before
	WeekHeading string // nearest matching week heading seen before Index, if any
}

// Locate finds the insertion point for a day that is not yet in the document.
//
// Days are kept in descending order, so the new block goes right before the
// first older day. Without an older day it goes under the last month or week
// heading of the target month, or at the end of the document.
func Locate(lines []string, target time.Time) Insertion {
	target = Day(target)
	month := int(target.Month())

	ins := Insertion{Index: -1}

	for i, line := range lines {
		if m, ok := headingMonth(monthHeadingRegex, line); ok && m == month {
			ins.Index = i + 1
		}

		if m, ok := headingMonth(weekHeadingRegex, line); ok && m == month {
			ins.Index = i + 1
			ins.WeekHeading = line
		}

		if ds, ok := headingDate(line); ok {
			d, err := ParseISODate(ds)
			if err == nil && d.Before(target) {
				ins.Index = i
				return ins
			}
		}
	}

	if ins.Index < 0 {
		ins.Index = len(lines)
	}
	return ins
}
