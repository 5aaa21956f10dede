package commands

import (
	"context"
	"log/slog"

	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// CheckResult lists the structural problems of one year document
type CheckResult struct {
	Year   int
	Path   string
	Days   int
	Issues []domain.Issue
}

// CheckCommand lints a year document against the day template
type CheckCommand struct {
	store ports.LogStore
	Year  int
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(store ports.LogStore, year int) *CheckCommand {
	return &CheckCommand{store: store, Year: year}
}

// Execute runs the check command
func (c *CheckCommand) Execute(ctx context.Context) (*CheckResult, error) {
	content, log, err := loadYear(c.store, c.Year)
	if err != nil {
		return nil, err
	}

	issues := domain.Check(content)
	slog.Debug("checked log", "year", c.Year, "days", log.Len(), "issues", len(issues))

	return &CheckResult{
		Year:   c.Year,
		Path:   c.store.Path(c.Year),
		Days:   log.Len(),
		Issues: issues,
	}, nil
}
