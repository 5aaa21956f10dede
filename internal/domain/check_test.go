package domain

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []IssueKind
	}{
		{
			name:    "clean template",
			content: strings.Join(DayTemplate(mustDate(t, "2026-01-08")), "\n"),
			want:    nil,
		},
		{
			name:    "wrong weekday",
			content: strings.Replace(strings.Join(DayTemplate(mustDate(t, "2026-01-08")), "\n"), "(목)", "(금)", 1),
			want:    []IssueKind{IssueWeekdayMismatch},
		},
		{
			name:    "missing heading",
			content: "#### 2026-01-08 (목)\n##### 회사\n-\n##### 개인\n-\n##### 스크랩\n-\n",
			want:    []IssueKind{IssueMissingCategory},
		},
		{
			name: "ascending dates",
			content: strings.Join(DayTemplate(mustDate(t, "2026-01-08")), "\n") + "\n---\n" +
				strings.Join(DayTemplate(mustDate(t, "2026-01-09")), "\n"),
			want: []IssueKind{IssueOutOfOrder},
		},
		{
			name: "duplicate dates",
			content: strings.Join(DayTemplate(mustDate(t, "2026-01-08")), "\n") + "\n---\n" +
				strings.Join(DayTemplate(mustDate(t, "2026-01-08")), "\n"),
			want: []IssueKind{IssueDuplicateDate},
		},
		{
			name: "duplicate date with a day between",
			content: strings.Join(DayTemplate(mustDate(t, "2026-01-10")), "\n") + "\n---\n" +
				strings.Join(DayTemplate(mustDate(t, "2026-01-09")), "\n") + "\n---\n" +
				strings.Join(DayTemplate(mustDate(t, "2026-01-10")), "\n"),
			want: []IssueKind{IssueDuplicateDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Check(tt.content)
			if len(issues) != len(tt.want) {
				t.Fatalf("got %d issues %+v, want %v", len(issues), issues, tt.want)
			}
			for i, issue := range issues {
				if issue.Kind != tt.want[i] {
					t.Errorf("issue %d kind = %s, want %s", i, issue.Kind, tt.want[i])
				}
			}
		})
	}
}
