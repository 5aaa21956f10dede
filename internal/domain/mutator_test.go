package domain

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

var itemLineRegex = regexp.MustCompile(`^- \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} (.*)$`)

var fixedNow = time.Date(2026, 1, 10, 14, 30, 5, 0, time.Local)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseISODate(s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

func TestAddItem_ExistingDay(t *testing.T) {
	content := "#### 2026-01-10 (토)\n\n##### 회사\n- note\n\n##### 개인\n-\n\n##### 스크랩\n-\n\n##### 아이디어\n-\n\n---\n"

	m, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryWork, "meeting", fixedNow)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if m.Created {
		t.Error("expected existing day to be reused")
	}
	if m.Line != "- 2026-01-10 14:30:05 meeting" {
		t.Errorf("Line = %q", m.Line)
	}

	e, ok := Parse(m.Content).Lookup(mustDate(t, "2026-01-10"))
	if !ok {
		t.Fatal("day disappeared after mutation")
	}
	work := e.Items[CategoryWork]
	if len(work) != 2 {
		t.Fatalf("expected 2 bullets in 회사, got %q", work)
	}
	match := itemLineRegex.FindStringSubmatch(work[1])
	if match == nil || match[1] != "meeting" {
		t.Errorf("new bullet %q does not carry a timestamp and the item text", work[1])
	}
}

func TestAddItem_AddsExactlyOneLine(t *testing.T) {
	before := Parse(sampleLog)
	date := mustDate(t, "2026-01-10")
	dayBefore, _ := before.Lookup(date)

	for _, c := range Categories {
		t.Run(c.String(), func(t *testing.T) {
			m, err := AddItem(sampleLog, date, c, "- another", fixedNow)
			if err != nil {
				t.Fatalf("AddItem failed: %v", err)
			}

			if got, want := strings.Count(m.Content, "\n"), strings.Count(sampleLog, "\n")+1; got != want {
				t.Errorf("line count = %d, want %d", got, want)
			}

			dayAfter, _ := Parse(m.Content).Lookup(date)
			for _, other := range Categories {
				want := len(dayBefore.Items[other])
				if other == c {
					want++
				}
				if got := len(dayAfter.Items[other]); got != want {
					t.Errorf("%s has %d items, want %d", other, got, want)
				}
			}

			beforeHead := strings.SplitN(dayBefore.Raw, "\n", 2)[0]
			afterHead := strings.SplitN(dayAfter.Raw, "\n", 2)[0]
			if beforeHead != afterHead {
				t.Errorf("heading changed: %q -> %q", beforeHead, afterHead)
			}

			other, _ := Parse(m.Content).Lookup(mustDate(t, "2026-01-08"))
			orig, _ := before.Lookup(mustDate(t, "2026-01-08"))
			if other.Raw != orig.Raw {
				t.Errorf("unrelated day changed")
			}
		})
	}
}

func TestAddItem_AppendsAfterBulletsAndBlankLines(t *testing.T) {
	content := strings.Join([]string{
		"#### 2026-01-10 (토)",
		"##### 회사",
		"- a",
		"- b",
		"",
		"##### 개인",
		"-",
		"---",
	}, "\n")

	m, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryWork, "c", fixedNow)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	lines := strings.Split(m.Content, "\n")
	if lines[5] != m.Line {
		t.Errorf("expected new line at index 5, got %q", lines)
	}
	if lines[6] != "##### 개인" {
		t.Errorf("next heading moved: %q", lines[6])
	}
}

func TestAddItem_LastCategoryStopsAtDivider(t *testing.T) {
	content := "#### 2026-01-10 (토)\n##### 아이디어\n- x\n\n---\n#### 2026-01-09 (금)\n##### 아이디어\n-\n"

	m, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryIdea, "y", fixedNow)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	lines := strings.Split(m.Content, "\n")
	if lines[4] != m.Line || lines[5] != Divider {
		t.Errorf("unexpected layout: %q", lines)
	}
}

func TestAddItem_NewDayUnderMonthHeading(t *testing.T) {
	content := "# 데일리로그 2026\n\n## 3월\n\n## 2월\n"
	date := mustDate(t, "2026-03-04")

	m, err := AddItem(content, date, CategoryScrap, "article [[Reading]]", fixedNow)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if !m.Created {
		t.Error("expected a new day block")
	}
	if m.Insertion.Index != 3 {
		t.Errorf("Insertion.Index = %d, want 3", m.Insertion.Index)
	}

	lines := strings.Split(m.Content, "\n")
	if lines[2] != "## 3월" || lines[4] != "#### 2026-03-04 (수)" {
		t.Errorf("new day is not directly under the month heading: %q", lines)
	}

	e, ok := Parse(m.Content).Lookup(date)
	if !ok {
		t.Fatal("new day not parsed")
	}
	for _, c := range Categories {
		items, present := e.Items[c]
		if !present || len(items) == 0 {
			t.Errorf("%s missing from new day", c)
		}
		filled := e.FilledItems(c)
		if c == CategoryScrap {
			if len(filled) != 1 || !strings.HasSuffix(filled[0], "article [[Reading]]") {
				t.Errorf("scrap items = %q", filled)
			}
		} else if len(filled) != 0 {
			t.Errorf("%s should only hold the stub, got %q", c, filled)
		}
	}
	if !strings.Contains(m.Content, "## 2월") {
		t.Error("following scaffold lost")
	}
}

func TestAddItem_KeepsDescendingOrder(t *testing.T) {
	content := "#### 2026-01-10 (토)\n-\n---\n#### 2026-01-08 (목)\n-\n---\n"

	tests := []struct {
		name string
		date string
		want []string
	}{
		{"newest", "2026-01-12", []string{"2026-01-12", "2026-01-10", "2026-01-08"}},
		{"between", "2026-01-09", []string{"2026-01-10", "2026-01-09", "2026-01-08"}},
		{"oldest appends at end", "2026-01-05", []string{"2026-01-10", "2026-01-08", "2026-01-05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := AddItem(content, mustDate(t, tt.date), CategoryPersonal, "x", fixedNow)
			if err != nil {
				t.Fatalf("AddItem failed: %v", err)
			}
			var got []string
			for _, e := range Parse(m.Content).Entries {
				got = append(got, e.DateString())
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddItem_MissingCategoryHeading(t *testing.T) {
	content := "#### 2026-01-10 (토)\n##### 개인\n-\n---\n"

	_, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryWork, "x", fixedNow)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	var missing *MissingCategoryError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingCategoryError, got %T", err)
	}
	if missing.Date != "2026-01-10" || missing.Category != CategoryWork {
		t.Errorf("unexpected error detail: %+v", missing)
	}
}

func TestAddItem_CategoryOfNextDayIsNotUsed(t *testing.T) {
	content := "#### 2026-01-10 (토)\n##### 개인\n-\n#### 2026-01-09 (금)\n##### 회사\n-\n"

	_, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryWork, "x", fixedNow)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestFormatItem(t *testing.T) {
	tests := []struct {
		item string
		want string
	}{
		{"meeting", "- 2026-01-10 14:30:05 meeting"},
		{"- meeting", "- 2026-01-10 14:30:05 meeting"},
		{"-meeting", "- 2026-01-10 14:30:05 meeting"},
		{"  spaced  ", "- 2026-01-10 14:30:05 spaced"},
		{"first\nsecond", "- 2026-01-10 14:30:05 first second"},
		{"a\r\n\r\n  b ", "- 2026-01-10 14:30:05 a b"},
		{"meeting\n---\n#### 2026-01-11 (일)", "- 2026-01-10 14:30:05 meeting --- #### 2026-01-11 (일)"},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			if got := FormatItem(tt.item, fixedNow); got != tt.want {
				t.Errorf("FormatItem(%q) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func TestAddItem_MultiLineItemStaysInDay(t *testing.T) {
	content := "#### 2026-01-10 (토)\n\n##### 회사\n-\n\n##### 개인\n-\n\n##### 스크랩\n-\n\n##### 아이디어\n-\n\n---\n"

	m, err := AddItem(content, mustDate(t, "2026-01-10"), CategoryWork, "meeting\n---\n#### 2026-01-11 (일)", fixedNow)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if added := strings.Count(m.Content, "\n") - strings.Count(content, "\n"); added != 1 {
		t.Errorf("lines added = %d, want 1", added)
	}

	log := Parse(m.Content)
	if len(log.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(log.Entries))
	}
	e := log.Entries[0]
	if got := e.Items[CategoryPersonal]; len(got) != 1 || got[0] != "-" {
		t.Errorf("개인 items = %q, want [\"-\"]", got)
	}
	if got := e.Items[CategoryWork]; len(got) != 2 || got[1] != m.Line {
		t.Errorf("회사 items = %q", got)
	}
}

func TestAddItem_DuplicateDay(t *testing.T) {
	day := "#### 2026-01-10 (토)\n\n##### 회사\n-\n\n##### 개인\n-\n\n##### 스크랩\n-\n\n##### 아이디어\n-\n\n---\n"
	other := strings.ReplaceAll(day, "2026-01-10 (토)", "2026-01-09 (금)")

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"single heading", day + other, false},
		{"repeated with a day between", day + other + day, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := AddItem(tt.content, mustDate(t, "2026-01-10"), CategoryWork, "x", fixedNow)
			if err != nil {
				t.Fatalf("AddItem failed: %v", err)
			}
			if m.Duplicate != tt.want {
				t.Errorf("Duplicate = %v, want %v", m.Duplicate, tt.want)
			}
			if i := strings.Index(m.Content, m.Line); i > strings.Index(m.Content, "2026-01-09") {
				t.Error("item should go under the first heading")
			}
		})
	}
}

func TestDayLine(t *testing.T) {
	content := "# 2026\n\n#### 2026-01-09 (금)\n\n##### 회사\n-\n---\n#### 2026-01-08 (목)\n"
	tests := []struct {
		date   string
		want   int
		wantOK bool
	}{
		{"2026-01-09", 3, true},
		{"2026-01-08", 8, true},
		{"2026-01-07", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, ok := DayLine(content, mustDate(t, tt.date))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DayLine = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
