package commands

import (
	"context"
	"time"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// SummaryCommand aggregates the days in [Start, End]
type SummaryCommand struct {
	store ports.LogStore
	Start time.Time
	End   time.Time
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(store ports.LogStore, start, end time.Time) *SummaryCommand {
	return &SummaryCommand{store: store, Start: start, End: end}
}

// Validate checks if the range is valid
func (c *SummaryCommand) Validate() error {
	return application.ValidateRange(c.Start, c.End)
}

// Execute runs the summary command; render with (*domain.Summary).Markdown
func (c *SummaryCommand) Execute(ctx context.Context) (*domain.Summary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log, err := loadRange(c.store, c.Start, c.End)
	if err != nil {
		return nil, err
	}
	return domain.Summarize(log, c.Start, c.End), nil
}
