package commands

import (
	"context"
	"fmt"
	"strings"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// DefaultTopLinks is the number of targets LinksCommand returns without a limit
const DefaultTopLinks = 20

// BacklinksCommand finds the items that link to a note
type BacklinksCommand struct {
	index  ports.LinkIndex
	Target string
}

// NewBacklinksCommand creates a new BacklinksCommand
func NewBacklinksCommand(index ports.LinkIndex, target string) *BacklinksCommand {
	return &BacklinksCommand{index: index, Target: target}
}

// Validate checks if the target is usable
func (c *BacklinksCommand) Validate() error {
	return application.ValidateRequired("target", c.Target)
}

// Execute runs the backlinks command. The target may be given with or
// without brackets.
func (c *BacklinksCommand) Execute(ctx context.Context) ([]domain.LinkRef, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target := strings.TrimSpace(c.Target)
	if strings.HasPrefix(target, "[[") {
		target = domain.LinkTarget(target)
	}

	refs, err := c.index.FindBacklinks(target)
	if err != nil {
		return nil, fmt.Errorf("failed to query backlinks: %w", err)
	}
	return refs, nil
}

// LinksCommand lists the links of one day, or the most referenced targets
// when no date is set
type LinksCommand struct {
	index ports.LinkIndex
	Date  string // YYYY-MM-DD
	Limit int
}

// LinksResult carries whichever listing LinksCommand produced
type LinksResult struct {
	Refs []domain.LinkRef
	Top  []domain.LinkCount
}

// NewLinksCommand creates a new LinksCommand
func NewLinksCommand(index ports.LinkIndex, date string, limit int) *LinksCommand {
	return &LinksCommand{index: index, Date: date, Limit: limit}
}

// Execute runs the links command
func (c *LinksCommand) Execute(ctx context.Context) (*LinksResult, error) {
	if c.Date != "" {
		if _, err := domain.ParseISODate(c.Date); err != nil {
			return nil, &application.ValidationError{
				Field:   "date",
				Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", c.Date),
				Err:     domain.ErrUnsupportedDate,
			}
		}
		refs, err := c.index.FindLinksFromDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to query links: %w", err)
		}
		return &LinksResult{Refs: refs}, nil
	}

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultTopLinks
	}
	top, err := c.index.TopTargets(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query link targets: %w", err)
	}
	return &LinksResult{Top: top}, nil
}

// SyncIndexCommand brings the link index up to date with the year documents
type SyncIndexCommand struct {
	index ports.LinkIndex
	Full  bool
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(index ports.LinkIndex, full bool) *SyncIndexCommand {
	return &SyncIndexCommand{index: index, Full: full}
}

// Execute runs the sync. A full rebuild also happens when the index asks for one.
func (c *SyncIndexCommand) Execute(ctx context.Context) (*domain.SyncStats, error) {
	if c.Full || c.index.NeedsFullRebuild() {
		return c.index.SyncFull()
	}
	return c.index.SyncIncremental()
}
