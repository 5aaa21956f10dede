package domain

import "strings"

// Parse decomposes a year document into day entries in a single pass.
//
// A day runs from its heading to the next day heading, a divider line, or the
// end of input. Bullets are attributed to the most recent recognized category
// heading of the day; bullets under an unknown heading stay in Raw only.
func Parse(content string) *Log {
	log := NewLog()

	var (
		current  *DayEntry
		category Category
		active   bool
		raw      []string
	)

	closeDay := func() {
		if current != nil {
			current.Raw = strings.Join(raw, "\n")
			log.add(current)
		}
		current = nil
		active = false
		raw = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if m := dayHeadingRegex.FindStringSubmatch(line); m != nil {
			date, err := ParseISODate(m[1])
			if err == nil {
				closeDay()
				current = &DayEntry{
					Date:    date,
					Weekday: m[2],
					Items:   newCategoryMap(),
				}
				raw = []string{line}
				continue
			}
		}

		if current == nil {
			continue
		}

		if isDivider(line) {
			closeDay()
			continue
		}

		raw = append(raw, line)

		if c, ok, recognized := headingCategory(line); ok {
			category, active = c, recognized
			continue
		}

		if active && isBullet(line) {
			current.Items[category] = append(current.Items[category], line)
		}
	}
	closeDay()

	return log
}
