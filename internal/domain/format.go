package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	BulletMarker = "-"
	Divider      = "---"

	dayHeadingPrefix      = "####"
	categoryHeadingPrefix = "#####"
)

var (
	// #### 2026-01-08 (목)
	dayHeadingRegex = regexp.MustCompile(`^####\s+(\d{4}-\d{2}-\d{2})\s+\(([월화수목금토일])\)`)
	// #### 2026-01-08, weekday optional; used when locating a day for mutation
	dayDateRegex = regexp.MustCompile(`^####\s+(\d{4}-\d{2}-\d{2})`)
	// ##### 회사
	categoryHeadingRegex = regexp.MustCompile(`^#####\s+(.+)`)
	// ## 1월
	monthHeadingRegex = regexp.MustCompile(`^##\s+(\d+)월`)
	// ### 1월 2주차
	weekHeadingRegex = regexp.MustCompile(`^###\s+(\d+)월\s+(\d+)주차`)
)

func isDivider(line string) bool {
	return strings.TrimSpace(line) == Divider
}

func isBullet(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, BulletMarker) && !strings.HasPrefix(t, Divider)
}

// headingDate returns the date string of a day heading line, weekday optional
func headingDate(line string) (string, bool) {
	m := dayDateRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// headingCategory returns the category named by a category heading line.
// ok is false for non-headings; recognized is false for unknown names.
func headingCategory(line string) (c Category, ok, recognized bool) {
	m := categoryHeadingRegex.FindStringSubmatch(line)
	if m == nil {
		return 0, false, false
	}
	c, recognized = categoryByName(m[1])
	return c, true, recognized
}

func headingMonth(re *regexp.Regexp, line string) (int, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
