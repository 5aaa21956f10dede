package domain

import (
	"regexp"
	"strings"
	"time"
)

// DayEntry is one parsed day of the log
type DayEntry struct {
	Date    time.Time
	Weekday string // label as written in the heading, e.g. "목"
	Raw     string // heading through the last line before the divider or next heading
	Items   map[Category][]string
}

// DateString returns the entry date as YYYY-MM-DD
func (e *DayEntry) DateString() string {
	return FormatDate(e.Date)
}

// WeekdayConsistent reports whether the heading label matches the date
func (e *DayEntry) WeekdayConsistent() bool {
	return e.Weekday == WeekdaySymbol(e.Date)
}

// FilledItems returns the items of a category that carry text (the "-" stub is skipped)
func (e *DayEntry) FilledItems(c Category) []string {
	var filled []string
	for _, item := range e.Items[c] {
		if IsFilledItem(item) {
			filled = append(filled, item)
		}
	}
	return filled
}

// IsFilledItem reports whether a bullet line has content beyond the marker
func IsFilledItem(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && t != BulletMarker
}

// Log holds the day entries of one document in file order
type Log struct {
	Entries []*DayEntry
	byDate  map[string]*DayEntry
}

// NewLog returns an empty log
func NewLog() *Log {
	return &Log{byDate: make(map[string]*DayEntry)}
}

func (l *Log) add(e *DayEntry) {
	l.Entries = append(l.Entries, e)
	l.byDate[e.DateString()] = e
}

// Lookup returns the entry for a date, if any
func (l *Log) Lookup(d time.Time) (*DayEntry, bool) {
	e, ok := l.byDate[FormatDate(d)]
	return e, ok
}

// Len returns the number of parsed entries, duplicates included
func (l *Log) Len() int {
	return len(l.Entries)
}

// Merge copies other's entries into l; later dates replace earlier lookups
func (l *Log) Merge(other *Log) {
	for _, e := range other.Entries {
		l.add(e)
	}
}

var linkRegex = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractLinks returns the [[wiki links]] found in text, brackets included
func ExtractLinks(text string) []string {
	matches := linkRegex.FindAllStringSubmatch(text, -1)
	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, "[["+m[1]+"]]")
	}
	return links
}

// LinkTarget strips the brackets and any alias from a wiki link
func LinkTarget(link string) string {
	target := strings.TrimSuffix(strings.TrimPrefix(link, "[["), "]]")
	if i := strings.Index(target, "|"); i >= 0 {
		target = target[:i]
	}
	return strings.TrimSpace(target)
}
