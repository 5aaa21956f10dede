package domain

import (
	"fmt"
	"time"
)

// DayHeading renders the heading line of a day entry
func DayHeading(date time.Time) string {
	return fmt.Sprintf("%s %s (%s)", dayHeadingPrefix, FormatDate(date), WeekdaySymbol(date))
}

// CategoryHeading renders the heading line of a category
func CategoryHeading(c Category) string {
	return categoryHeadingPrefix + " " + c.String()
}

// DayTemplate returns the empty skeleton of a new day: the heading and every
// category with a single "-" stub.
func DayTemplate(date time.Time) []string {
	lines := []string{DayHeading(date)}
	for _, c := range Categories {
		lines = append(lines, "", CategoryHeading(c), BulletMarker)
	}
	return lines
}
