package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the ISO date layout used in day headings and file names
const DateLayout = "2006-01-02"

// TimestampLayout prefixes every item the mutator writes
const TimestampLayout = "2006-01-02 15:04:05"

var weekdaySymbols = [...]string{
	time.Monday:    "월",
	time.Tuesday:   "화",
	time.Wednesday: "수",
	time.Thursday:  "목",
	time.Friday:    "금",
	time.Saturday:  "토",
	time.Sunday:    "일",
}

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthDayRegex = regexp.MustCompile(`^\d{2}-\d{2}$`)
)

// WeekdaySymbol returns the one-character weekday label for a date
func WeekdaySymbol(d time.Time) string {
	return weekdaySymbols[d.Weekday()]
}

// Day truncates t to a calendar date at UTC midnight
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseISODate parses a YYYY-MM-DD string into a calendar date
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// ParseDate resolves a date token relative to now.
// Supported: today, yesterday, YYYY-MM-DD, MM-DD (year of now).
func ParseDate(token string, now time.Time) (time.Time, error) {
	token = strings.TrimSpace(token)

	switch strings.ToLower(token) {
	case "today":
		return Day(now), nil
	case "yesterday":
		return Day(now).AddDate(0, 0, -1), nil
	}

	if isoDateRegex.MatchString(token) {
		d, err := ParseISODate(token)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedDate, token)
		}
		return d, nil
	}

	if monthDayRegex.MatchString(token) {
		d, err := ParseISODate(fmt.Sprintf("%04d-%s", now.Year(), token))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedDate, token)
		}
		return d, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedDate, token)
}

// WeekRange returns the Monday and Sunday of the week containing d
func WeekRange(d time.Time) (time.Time, time.Time) {
	d = Day(d)
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the month containing d
func MonthRange(d time.Time) (time.Time, time.Time) {
	d = Day(d)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// YearsBetween lists the distinct years touched by [start, end] in ascending order
func YearsBetween(start, end time.Time) []int {
	var years []int
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}

// EachDay calls fn for every calendar day in [start, end]
func EachDay(start, end time.Time, fn func(time.Time)) {
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
