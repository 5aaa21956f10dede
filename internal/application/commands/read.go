package commands

import (
	"context"
	"fmt"
	"time"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// ReadResult holds the raw day blocks of an interval
type ReadResult struct {
	Start time.Time
	End   time.Time
	Text  string
	Empty bool
}

// ReadRangeCommand returns the raw text of the days in [Start, End]
type ReadRangeCommand struct {
	store ports.LogStore
	Start time.Time
	End   time.Time
}

// NewReadRangeCommand creates a new ReadRangeCommand
func NewReadRangeCommand(store ports.LogStore, start, end time.Time) *ReadRangeCommand {
	return &ReadRangeCommand{store: store, Start: start, End: end}
}

// Validate checks if the range is valid
func (c *ReadRangeCommand) Validate() error {
	return application.ValidateRange(c.Start, c.End)
}

// Execute runs the read command. An interval without entries is not an
// error; the result is flagged Empty and carries a notice instead.
func (c *ReadRangeCommand) Execute(ctx context.Context) (*ReadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log, err := loadRange(c.store, c.Start, c.End)
	if err != nil {
		return nil, err
	}

	result := &ReadResult{Start: c.Start, End: c.End}
	text, ok := domain.ReadRange(log, c.Start, c.End)
	if !ok {
		result.Empty = true
		result.Text = fmt.Sprintf("No entries between %s and %s.", domain.FormatDate(c.Start), domain.FormatDate(c.End))
		return result, nil
	}
	result.Text = text
	return result, nil
}
