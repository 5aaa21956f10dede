package commands

import (
	"time"

	"dailylog/internal/domain"
)

// RangeSpec describes a date interval the way the CLI and MCP tools accept it.
// Week and Month take precedence over From/To, which take precedence over Date.
type RangeSpec struct {
	Date  string
	From  string
	To    string
	Week  bool
	Month bool
}

// ResolveRead turns the range into an interval for reading.
// Without any field set it selects today; a lone From reads a single day.
func (s RangeSpec) ResolveRead(now time.Time) (time.Time, time.Time, error) {
	switch {
	case s.Week:
		start, end := domain.WeekRange(now)
		return start, end, nil
	case s.Month:
		start, end := domain.MonthRange(now)
		return start, end, nil
	case s.From != "":
		return s.fromTo(now, s.From)
	}

	token := s.Date
	if token == "" {
		token = "today"
	}
	d, err := domain.ParseDate(token, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return d, d, nil
}

// ResolveSummary turns the range into an interval for summaries.
// Without any field set it selects the current week; a lone From runs until today.
func (s RangeSpec) ResolveSummary(now time.Time) (time.Time, time.Time, error) {
	switch {
	case s.Month:
		start, end := domain.MonthRange(now)
		return start, end, nil
	case s.From != "":
		return s.fromTo(now, "today")
	default:
		start, end := domain.WeekRange(now)
		return start, end, nil
	}
}

func (s RangeSpec) fromTo(now time.Time, defaultTo string) (time.Time, time.Time, error) {
	start, err := domain.ParseDate(s.From, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to := s.To
	if to == "" {
		to = defaultTo
	}
	end, err := domain.ParseDate(to, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
