package domain

import (
	"fmt"
	"strings"
	"time"
)

// Mutation is the result of adding one item to a document
type Mutation struct {
	Content   string    // full updated document
	Line      string    // the inserted bullet line
	Created   bool      // a new day block was inserted as well
	Duplicate bool      // the day has more than one heading; the first one was used
	Insertion Insertion // where the new day block went; zero unless Created
}

// AddItem appends a timestamped item to a category of the given day.
//
// Every index is computed against the untouched line snapshot and the result is
// produced by a single splice, so no position is ever re-derived after an edit.
// When the day does not exist yet a complete block (template, item included)
// is built first and spliced in at the located position.
func AddItem(content string, date time.Time, c Category, item string, now time.Time) (*Mutation, error) {
	date = Day(date)
	lines := strings.Split(content, "\n")
	line := FormatItem(item, now)

	if head := findDay(lines, date); head >= 0 {
		pos, err := appendPosition(lines, head, c)
		if err != nil {
			return nil, err
		}
		return &Mutation{
			Content:   strings.Join(splice(lines, pos, line), "\n"),
			Line:      line,
			Duplicate: findDay(lines[head+1:], date) >= 0,
		}, nil
	}

	block := newDayBlock(date)
	pos, err := appendPosition(block, 1, c)
	if err != nil {
		return nil, err
	}
	block = splice(block, pos, line)

	ins := Locate(lines, date)
	return &Mutation{
		Content:   strings.Join(splice(lines, ins.Index, block...), "\n"),
		Line:      line,
		Created:   true,
		Insertion: ins,
	}, nil
}

// FormatItem builds the bullet line written for an item.
// Line breaks are folded into single spaces so the item stays one line.
func FormatItem(item string, now time.Time) string {
	var parts []string
	for _, p := range strings.FieldsFunc(item, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	text := strings.Join(parts, " ")
	if strings.HasPrefix(text, BulletMarker) {
		text = strings.TrimSpace(text[len(BulletMarker):])
	}
	return fmt.Sprintf("%s %s %s", BulletMarker, now.Format(TimestampLayout), text)
}

// newDayBlock wraps the day template the way it is spliced into a document
func newDayBlock(date time.Time) []string {
	block := []string{""}
	block = append(block, DayTemplate(date)...)
	return append(block, "", Divider)
}

// findDay returns the line index of the first heading for date, or -1
func findDay(lines []string, date time.Time) int {
	want := FormatDate(date)
	for i, line := range lines {
		if ds, ok := headingDate(line); ok && ds == want {
			return i
		}
	}
	return -1
}

// DayLine returns the 1-based line number of the heading for date
func DayLine(content string, date time.Time) (int, bool) {
	i := findDay(strings.Split(content, "\n"), date)
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// appendPosition returns the index right after the run of bullets and blank
// lines that follows the category heading inside the day starting at head.
func appendPosition(lines []string, head int, c Category) (int, error) {
	end := len(lines)
	heading := -1

	for i := head + 1; i < len(lines); i++ {
		line := lines[i]
		if _, ok := headingDate(line); ok || isDivider(line) {
			end = i
			break
		}
		hc, ok, recognized := headingCategory(line)
		if !ok {
			continue
		}
		if heading < 0 && recognized && hc == c {
			heading = i
		} else if heading >= 0 {
			end = i
			break
		}
	}

	if heading < 0 {
		date, _ := headingDate(lines[head])
		return 0, &MissingCategoryError{Date: date, Category: c}
	}

	pos := heading + 1
	for i := heading + 1; i < end; i++ {
		if !isBullet(lines[i]) && strings.TrimSpace(lines[i]) != "" {
			break
		}
		pos = i + 1
	}
	return pos, nil
}

// splice returns a new slice with ins placed before lines[at]
func splice(lines []string, at int, ins ...string) []string {
	out := make([]string, 0, len(lines)+len(ins))
	out = append(out, lines[:at]...)
	out = append(out, ins...)
	return append(out, lines[at:]...)
}
