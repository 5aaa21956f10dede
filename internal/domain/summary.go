package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MaxSummaryLinks caps the link listing of a summary
	MaxSummaryLinks = 20
	// MaxSummaryItems caps the per-category item listing of a summary
	MaxSummaryItems = 30
)

// ReadRange concatenates the raw text of every day in [start, end] in
// calendar order. ok is false when no day in the interval has an entry.
func ReadRange(log *Log, start, end time.Time) (text string, ok bool) {
	var blocks []string
	EachDay(start, end, func(d time.Time) {
		if e, found := log.Lookup(d); found {
			blocks = append(blocks, e.Raw, "")
		}
	})
	if len(blocks) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(blocks, "\n")), true
}

// CategoryStat aggregates one category over a summary interval
type CategoryStat struct {
	Category Category
	Count    int
	Items    []string // "YYYY-MM-DD: - item"
}

// Summary aggregates the entries of an interval
type Summary struct {
	Start      time.Time
	End        time.Time
	TotalDays  int
	LoggedDays int
	Stats      []CategoryStat // one per category, in template order
	Links      []string       // unique [[links]] in first-seen order
}

// Summarize counts filled items per category and collects the linked notes
func Summarize(log *Log, start, end time.Time) *Summary {
	start, end = Day(start), Day(end)
	s := &Summary{
		Start:     start,
		End:       end,
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
	}

	stats := make(map[Category]*CategoryStat, len(Categories))
	for _, c := range Categories {
		stats[c] = &CategoryStat{Category: c}
	}
	seen := make(map[string]bool)

	EachDay(start, end, func(d time.Time) {
		e, ok := log.Lookup(d)
		if !ok {
			return
		}
		s.LoggedDays++
		for _, c := range Categories {
			for _, item := range e.FilledItems(c) {
				st := stats[c]
				st.Count++
				st.Items = append(st.Items, fmt.Sprintf("%s: %s", e.DateString(), strings.TrimSpace(item)))
				for _, link := range ExtractLinks(item) {
					if !seen[link] {
						seen[link] = true
						s.Links = append(s.Links, link)
					}
				}
			}
		}
	})

	for _, c := range Categories {
		s.Stats = append(s.Stats, *stats[c])
	}
	return s
}

// Markdown renders the summary as an Obsidian-friendly report
func (s *Summary) Markdown() string {
	var out []string
	out = append(out,
		fmt.Sprintf("## Summary: %s ~ %s", FormatDate(s.Start), FormatDate(s.End)),
		"",
		fmt.Sprintf("**Period**: %d of %d days logged", s.LoggedDays, s.TotalDays),
		"",
		"### Items per category",
		"",
		"| Category | Items |",
		"|------|---------|",
	)
	for _, st := range s.Stats {
		out = append(out, fmt.Sprintf("| %s | %d |", st.Category, st.Count))
	}
	out = append(out, "")

	if len(s.Links) > 0 {
		out = append(out, "### Linked notes", "")
		for i, link := range s.Links {
			if i == MaxSummaryLinks {
				out = append(out, fmt.Sprintf("- ... and %d more", len(s.Links)-MaxSummaryLinks))
				break
			}
			out = append(out, "- "+link)
		}
		out = append(out, "")
	}

	out = append(out, "### Items by category", "")
	for _, st := range s.Stats {
		if len(st.Items) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("> [!note]- %s (%d)", st.Category, len(st.Items)))
		for i, item := range st.Items {
			if i == MaxSummaryItems {
				out = append(out, fmt.Sprintf("> ... and %d more", len(st.Items)-MaxSummaryItems))
				break
			}
			out = append(out, "> "+item)
		}
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}
