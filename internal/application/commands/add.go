package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// AddItemResult contains the result of adding an item
type AddItemResult struct {
	Date       time.Time
	Category   domain.Category
	Line       string
	CreatedDay bool
	Duplicate  bool // the date has several headings and the item went under the first
	Path       string
	Message    string
}

// AddItemCommand appends a timestamped bullet under a category of a day,
// creating the day from the template when it does not exist yet
type AddItemCommand struct {
	store    ports.LogStore
	Date     string // today, yesterday, YYYY-MM-DD or MM-DD; empty means today
	Category string
	Item     string
	Now      func() time.Time
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(store ports.LogStore, date, category, item string) *AddItemCommand {
	return &AddItemCommand{
		store:    store,
		Date:     date,
		Category: category,
		Item:     item,
		Now:      time.Now,
	}
}

// Validate checks the arguments without touching the store
func (c *AddItemCommand) Validate() error {
	if _, err := application.ValidateCategory("category", c.Category); err != nil {
		return err
	}
	if err := application.ValidateRequired("item", c.Item); err != nil {
		return err
	}
	if err := application.ValidateSingleLine("item", c.Item); err != nil {
		return err
	}
	if _, err := c.resolveDate(); err != nil {
		return err
	}
	return nil
}

func (c *AddItemCommand) resolveDate() (time.Time, error) {
	token := c.Date
	if token == "" {
		token = "today"
	}
	return domain.ParseDate(token, c.now())
}

func (c *AddItemCommand) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Execute runs the add item command
func (c *AddItemCommand) Execute(ctx context.Context) (*AddItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	category, _ := domain.ParseCategory(c.Category)
	date, _ := c.resolveDate()

	content, _, err := loadYear(c.store, date.Year())
	if err != nil {
		return nil, err
	}

	m, err := domain.AddItem(content, date, category, c.Item, c.now())
	if err != nil {
		return nil, err
	}

	if err := c.store.Write(date.Year(), m.Content); err != nil {
		return nil, fmt.Errorf("failed to write log: %w", err)
	}

	slog.Info("item added",
		"date", domain.FormatDate(date),
		"category", category.String(),
		"created_day", m.Created,
	)
	if m.Duplicate {
		slog.Warn("day heading appears more than once", "date", domain.FormatDate(date))
	}

	msg := fmt.Sprintf("Added to %s %s: %s", domain.FormatDate(date), category, m.Line)
	if m.Created {
		msg = fmt.Sprintf("Created %s and added to %s: %s", domain.DayHeading(date), category, m.Line)
	}
	if m.Duplicate {
		msg += fmt.Sprintf(" (warning: %s has more than one heading; the item went under the first, while read shows the last)", domain.FormatDate(date))
	}

	return &AddItemResult{
		Date:       date,
		Category:   category,
		Line:       m.Line,
		CreatedDay: m.Created,
		Duplicate:  m.Duplicate,
		Path:       c.store.Path(date.Year()),
		Message:    msg,
	}, nil
}
