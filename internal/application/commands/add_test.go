package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dailylog/internal/application"
	"dailylog/internal/domain"
)

func TestAddItemCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		category string
		item     string
		wantErr  error
	}{
		{
			name:     "valid korean category",
			date:     "2026-01-10",
			category: "회사",
			item:     "review",
		},
		{
			name:     "valid alias and default date",
			category: "idea",
			item:     "review",
		},
		{
			name:     "unknown category",
			date:     "today",
			category: "메모",
			item:     "review",
			wantErr:  domain.ErrInvalidCategory,
		},
		{
			name:     "unsupported date",
			date:     "next week",
			category: "회사",
			item:     "review",
			wantErr:  domain.ErrUnsupportedDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddItemCommand{Date: tt.date, Category: tt.category, Item: tt.item, Now: fixedClock}
			err := cmd.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddItemCommand_EmptyItem(t *testing.T) {
	cmd := &AddItemCommand{Category: "회사", Item: "  ", Now: fixedClock}
	var valErr *application.ValidationError
	if err := cmd.Validate(); !errors.As(err, &valErr) || valErr.Field != "item" {
		t.Errorf("expected ValidationError on item, got %v", err)
	}
}

func TestAddItemCommand_MultiLineItem(t *testing.T) {
	for _, item := range []string{"meeting\n---\n#### 2026-01-11 (일)", "a\rb"} {
		cmd := &AddItemCommand{Category: "회사", Item: item, Now: fixedClock}
		var valErr *application.ValidationError
		if err := cmd.Validate(); !errors.As(err, &valErr) || valErr.Field != "item" {
			t.Errorf("Validate(%q): expected ValidationError on item, got %v", item, err)
		}
	}
}

func TestAddItemCommand_InvalidInputDoesNoIO(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})

	inputs := []*AddItemCommand{
		NewAddItemCommand(store, "today", "unknown", "x"),
		NewAddItemCommand(store, "today", "회사", ""),
		NewAddItemCommand(store, "someday", "회사", "x"),
		NewAddItemCommand(store, "2026-01-10", "회사", "meeting\n---\n#### 2026-01-11 (일)"),
	}
	for _, cmd := range inputs {
		cmd.Now = fixedClock
		if _, err := cmd.Execute(context.Background()); err == nil {
			t.Errorf("expected error for %+v", cmd)
		}
	}

	if store.reads != 0 || store.writes != 0 {
		t.Errorf("expected no I/O, got %d reads and %d writes", store.reads, store.writes)
	}
}

func TestAddItemCommand_ExistingDay(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	cmd := NewAddItemCommand(store, "2026-01-10", "work", "review PR")
	cmd.Now = fixedClock

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.CreatedDay {
		t.Error("expected existing day")
	}
	if result.Line != "- 2026-01-10 14:30:05 review PR" {
		t.Errorf("Line = %q", result.Line)
	}
	if result.Category != domain.CategoryWork {
		t.Errorf("Category = %v", result.Category)
	}
	if result.Path != store.Path(2026) {
		t.Errorf("Path = %q", result.Path)
	}
	if !strings.Contains(result.Message, "2026-01-10") {
		t.Errorf("Message = %q", result.Message)
	}
	if store.writes != 1 {
		t.Errorf("expected one write, got %d", store.writes)
	}

	e, _ := domain.Parse(store.docs[2026]).Lookup(mustDate("2026-01-10"))
	work := e.Items[domain.CategoryWork]
	if len(work) != 2 || work[1] != result.Line {
		t.Errorf("회사 items = %q", work)
	}
}

func TestAddItemCommand_CreatesDay(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	cmd := NewAddItemCommand(store, "today", "개인", "- gym")
	cmd.Now = func() time.Time { return time.Date(2026, 1, 11, 8, 0, 0, 0, time.Local) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.CreatedDay {
		t.Error("expected a new day")
	}
	if result.Line != "- 2026-01-11 08:00:00 gym" {
		t.Errorf("Line = %q", result.Line)
	}
	if !strings.Contains(result.Message, "#### 2026-01-11 (일)") {
		t.Errorf("Message = %q", result.Message)
	}

	var dates []string
	for _, e := range domain.Parse(store.docs[2026]).Entries {
		dates = append(dates, e.DateString())
	}
	if strings.Join(dates, ",") != "2026-01-11,2026-01-10,2026-01-08" {
		t.Errorf("day order = %v", dates)
	}
}

func TestAddItemCommand_YesterdayAcrossYears(t *testing.T) {
	store := newMemStore(map[int]string{2025: log2025, 2026: log2026})
	cmd := NewAddItemCommand(store, "yesterday", "스크랩", "article")
	cmd.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 10, 0, 0, time.Local) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.CreatedDay {
		t.Error("2025-12-31 already exists")
	}
	if store.docs[2026] != log2026 {
		t.Error("2026 document must not change")
	}
	if !strings.Contains(store.docs[2025], "- 2026-01-01 00:10:00 article") {
		t.Errorf("item missing from 2025 document:\n%s", store.docs[2025])
	}
}

func TestAddItemCommand_MissingYear(t *testing.T) {
	store := newMemStore(map[int]string{2026: log2026})
	cmd := NewAddItemCommand(store, "2027-03-01", "회사", "x")
	cmd.Now = fixedClock

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Exists(2027) || store.writes != 0 {
		t.Error("a missing year document must not be created")
	}
}

func TestAddItemCommand_MissingCategoryHeading(t *testing.T) {
	store := newMemStore(map[int]string{2026: "#### 2026-01-10 (토)\n##### 개인\n-\n---\n"})
	cmd := NewAddItemCommand(store, "2026-01-10", "회사", "x")
	cmd.Now = fixedClock

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if store.writes != 0 {
		t.Error("document must not be written on failure")
	}
}

func TestAddItemCommand_DuplicateDayWarns(t *testing.T) {
	day := log2025[strings.Index(log2025, "####"):]
	store := newMemStore(map[int]string{2025: log2025 + "\n" + day})
	cmd := NewAddItemCommand(store, "2025-12-31", "personal", "walk")
	cmd.Now = fixedClock

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Duplicate {
		t.Error("expected the duplicate day to be reported")
	}
	if !strings.Contains(result.Message, "more than one heading") {
		t.Errorf("Message = %q", result.Message)
	}

	store = newMemStore(map[int]string{2026: log2026})
	cmd = NewAddItemCommand(store, "2026-01-10", "personal", "walk")
	cmd.Now = fixedClock
	if result, err = cmd.Execute(context.Background()); err != nil || result.Duplicate {
		t.Errorf("single heading: Duplicate = %v, err = %v", result != nil && result.Duplicate, err)
	}
}
