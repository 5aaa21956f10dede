package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// ExportFormat selects the serialization of ExportCommand
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ParseExportFormat accepts json, yaml or yml
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q (available: json, yaml)", s),
		}
	}
}

// ExportedDay is the serialized form of a day entry
type ExportedDay struct {
	Date       string             `json:"date" yaml:"date"`
	Weekday    string             `json:"weekday" yaml:"weekday"`
	Categories []ExportedCategory `json:"categories" yaml:"categories"`
}

// ExportedCategory holds the filled items of one category
type ExportedCategory struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
	Links []string `json:"links,omitempty" yaml:"links,omitempty"`
}

// ExportCommand serializes the parsed days of an interval
type ExportCommand struct {
	store  ports.LogStore
	Start  time.Time
	End    time.Time
	Format ExportFormat
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.LogStore, start, end time.Time, format ExportFormat) *ExportCommand {
	return &ExportCommand{store: store, Start: start, End: end, Format: format}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	if _, err := ParseExportFormat(string(c.Format)); err != nil {
		return err
	}
	return application.ValidateRange(c.Start, c.End)
}

// Execute runs the export command and returns the encoded document
func (c *ExportCommand) Execute(ctx context.Context) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log, err := loadRange(c.store, c.Start, c.End)
	if err != nil {
		return nil, err
	}

	days := []ExportedDay{}
	domain.EachDay(c.Start, c.End, func(d time.Time) {
		e, ok := log.Lookup(d)
		if !ok {
			return
		}
		days = append(days, exportDay(e))
	})

	format, _ := ParseExportFormat(string(c.Format))
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(days); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func exportDay(e *domain.DayEntry) ExportedDay {
	day := ExportedDay{Date: e.DateString(), Weekday: e.Weekday}
	for _, cat := range domain.Categories {
		ec := ExportedCategory{Name: cat.String(), Items: []string{}}
		for _, line := range e.FilledItems(cat) {
			ec.Items = append(ec.Items, ItemText(line))
			for _, link := range domain.ExtractLinks(line) {
				ec.Links = append(ec.Links, domain.LinkTarget(link))
			}
		}
		day.Categories = append(day.Categories, ec)
	}
	return day
}
