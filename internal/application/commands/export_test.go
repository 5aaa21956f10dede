package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"dailylog/internal/application"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ExportFormat
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExportFormat(tt.input)
			if tt.wantErr {
				var valErr *application.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseExportFormat(%q) = %q, %v", tt.input, got, err)
			}
		})
	}
}

func checkExportedDays(t *testing.T, days []ExportedDay) {
	t.Helper()
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2026-01-08" || days[1].Date != "2026-01-10" {
		t.Errorf("dates = %s, %s", days[0].Date, days[1].Date)
	}
	if len(days[0].Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(days[0].Categories))
	}

	personal := days[0].Categories[1]
	if personal.Name != "개인" || len(personal.Items) != 1 || personal.Items[0] != "run [[Health]]" {
		t.Errorf("개인 = %+v", personal)
	}
	if len(personal.Links) != 1 || personal.Links[0] != "Health" {
		t.Errorf("개인 links = %v", personal.Links)
	}

	work := days[1].Categories[0]
	if len(work.Items) != 1 || work.Items[0] != "kickoff [[Project A]]" {
		t.Errorf("회사 = %+v", work)
	}
	if idea := days[1].Categories[3]; len(idea.Items) != 0 {
		t.Errorf("아이디어 should be empty, got %v", idea.Items)
	}
}

func TestExportCommand_JSON(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	data, err := NewExportCommand(store, mustDate("2026-01-01"), mustDate("2026-01-31"), FormatJSON).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var days []ExportedDay
	if err := json.Unmarshal(data, &days); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}
	checkExportedDays(t, days)
}

func TestExportCommand_YAML(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	data, err := NewExportCommand(store, mustDate("2026-01-01"), mustDate("2026-01-31"), FormatYAML).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var days []ExportedDay
	if err := yaml.Unmarshal(data, &days); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, data)
	}
	checkExportedDays(t, days)
}

func TestExportCommand_EmptyRange(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	data, err := NewExportCommand(store, mustDate("2026-03-01"), mustDate("2026-03-31"), FormatJSON).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(data) != "[]\n" {
		t.Errorf("expected empty array, got %q", data)
	}
}
