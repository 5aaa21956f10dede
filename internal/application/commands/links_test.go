package commands

import (
	"context"
	"errors"
	"testing"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// stubIndex records queries made against ports.LinkIndex
type stubIndex struct {
	refs        []domain.LinkRef
	top         []domain.LinkCount
	lastTarget  string
	lastDate    string
	lastLimit   int
	needsFull   bool
	fullSyncs   int
	incremental int
}

func (s *stubIndex) Open(string) error { return nil }
func (s *stubIndex) Close() error { return nil }
func (s *stubIndex) NeedsFullRebuild() bool { return s.needsFull }

func (s *stubIndex) SyncIncremental() (*domain.SyncStats, error) {
	s.incremental++
	return &domain.SyncStats{}, nil
}

func (s *stubIndex) SyncFull() (*domain.SyncStats, error) {
	s.fullSyncs++
	return &domain.SyncStats{}, nil
}

func (s *stubIndex) FindBacklinks(target string) ([]domain.LinkRef, error) {
	s.lastTarget = target
	return s.refs, nil
}

func (s *stubIndex) FindLinksFromDate(date string) ([]domain.LinkRef, error) {
	s.lastDate = date
	return s.refs, nil
}

func (s *stubIndex) TopTargets(limit int) ([]domain.LinkCount, error) {
	s.lastLimit = limit
	return s.top, nil
}

func (s *stubIndex) BeginTx() (ports.IndexTx, error) {
	return nil, errors.New("not supported")
}

func TestBacklinksCommand(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantTarget string
		wantErr    bool
	}{
		{"plain target", "Project A", "Project A", false},
		{"bracketed target", "[[Project A|alias]]", "Project A", false},
		{"empty target", " ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := &stubIndex{refs: []domain.LinkRef{{Target: "Project A", Date: "2026-01-10"}}}
			refs, err := NewBacklinksCommand(idx, tt.target).Execute(context.Background())
			if tt.wantErr {
				var valErr *application.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if idx.lastTarget != tt.wantTarget {
				t.Errorf("queried %q, want %q", idx.lastTarget, tt.wantTarget)
			}
			if len(refs) != 1 {
				t.Errorf("expected 1 ref, got %d", len(refs))
			}
		})
	}
}

func TestLinksCommand(t *testing.T) {
	idx := &stubIndex{top: []domain.LinkCount{{Target: "Project A", Count: 2}}}

	result, err := NewLinksCommand(idx, "", 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if idx.lastLimit != DefaultTopLinks || len(result.Top) != 1 {
		t.Errorf("limit = %d, top = %v", idx.lastLimit, result.Top)
	}

	if _, err := NewLinksCommand(idx, "2026-01-10", 0).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if idx.lastDate != "2026-01-10" {
		t.Errorf("queried date %q", idx.lastDate)
	}

	if _, err := NewLinksCommand(idx, "01-10", 0).Execute(context.Background()); !errors.Is(err, domain.ErrUnsupportedDate) {
		t.Errorf("expected ErrUnsupportedDate, got %v", err)
	}
}

func TestSyncIndexCommand(t *testing.T) {
	idx := &stubIndex{}
	if _, err := NewSyncIndexCommand(idx, false).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	idx.needsFull = true
	if _, err := NewSyncIndexCommand(idx, false).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSyncIndexCommand(&stubIndex{}, true).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	if idx.incremental != 1 || idx.fullSyncs != 1 {
		t.Errorf("incremental=%d full=%d", idx.incremental, idx.fullSyncs)
	}
}
