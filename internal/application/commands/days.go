package commands

import (
	"context"
	"sort"

	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// DayOverview is one row of the days listing
type DayOverview struct {
	Date      string
	Weekday   string
	Counts    []int // filled items per category, in template order
	Links     int
	Entry     *domain.DayEntry
	WeekdayOK bool
}

// Total returns the number of filled items of the day
func (d DayOverview) Total() int {
	n := 0
	for _, c := range d.Counts {
		n += c
	}
	return n
}

// DaysCommand lists the days of one year document, newest first
type DaysCommand struct {
	store ports.LogStore
	Year  int
}

// NewDaysCommand creates a new DaysCommand
func NewDaysCommand(store ports.LogStore, year int) *DaysCommand {
	return &DaysCommand{store: store, Year: year}
}

// Execute runs the days command
func (c *DaysCommand) Execute(ctx context.Context) ([]DayOverview, error) {
	_, log, err := loadYear(c.store, c.Year)
	if err != nil {
		return nil, err
	}

	days := make([]DayOverview, 0, log.Len())
	for _, e := range log.Entries {
		row := DayOverview{
			Date:      e.DateString(),
			Weekday:   e.Weekday,
			Counts:    make([]int, len(domain.Categories)),
			Entry:     e,
			WeekdayOK: e.WeekdayConsistent(),
		}
		for i, cat := range domain.Categories {
			items := e.FilledItems(cat)
			row.Counts[i] = len(items)
			for _, item := range items {
				row.Links += len(domain.ExtractLinks(item))
			}
		}
		days = append(days, row)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days, nil
}
