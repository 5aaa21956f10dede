package application

import (
	"errors"
	"testing"
	"time"

	"dailylog/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "item",
			value:     "meeting notes",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "item",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "item",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateSingleLine(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"single line", "meeting [[Notes]]", false},
		{"newline", "meeting\n---", true},
		{"carriage return", "meeting\rnotes", true},
		{"trailing newline", "meeting\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleLine("item", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSingleLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			var valErr *ValidationError
			if err != nil && (!errors.As(err, &valErr) || valErr.Field != "item") {
				t.Errorf("expected ValidationError on item, got %v", err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    domain.Category
		wantErr bool
	}{
		{"korean name", "아이디어", domain.CategoryIdea, false},
		{"alias", "scrap", domain.CategoryScrap, false},
		{"unknown", "memo", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCategory("category", tt.value)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCategory) {
					t.Errorf("expected ErrInvalidCategory, got %v", err)
				}
				var valErr *ValidationError
				if !errors.As(err, &valErr) || valErr.Field != "category" {
					t.Errorf("expected ValidationError on category, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	if err := ValidateRange(a, b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateRange(a, a); err != nil {
		t.Errorf("single day range rejected: %v", err)
	}
	if err := ValidateRange(b, a); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestYearNotFoundError(t *testing.T) {
	err := &YearNotFoundError{Year: 2026, Path: "/vault/log.md"}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected YearNotFoundError to match ErrNotFound")
	}
}
