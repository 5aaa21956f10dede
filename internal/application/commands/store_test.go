package commands

import (
	"fmt"
	"io/fs"
	"sort"
	"time"
)

// memStore is an in-memory ports.LogStore that counts I/O calls
type memStore struct {
	docs   map[int]string
	reads  int
	writes int
}

func newMemStore(docs map[int]string) *memStore {
	if docs == nil {
		docs = make(map[int]string)
	}
	return &memStore{docs: docs}
}

func (s *memStore) Path(year int) string {
	return fmt.Sprintf("/vault/02_Areas/일지/데일리로그 %d.md", year)
}

func (s *memStore) Exists(year int) bool {
	_, ok := s.docs[year]
	return ok
}

func (s *memStore) Read(year int) (string, error) {
	s.reads++
	content, ok := s.docs[year]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: s.Path(year), Err: fs.ErrNotExist}
	}
	return content, nil
}

func (s *memStore) Write(year int, content string) error {
	s.writes++
	s.docs[year] = content
	return nil
}

func (s *memStore) ModTime(year int) (time.Time, error) {
	if !s.Exists(year) {
		return time.Time{}, fs.ErrNotExist
	}
	return time.Unix(0, 0), nil
}

func (s *memStore) Years() ([]int, error) {
	years := make([]int, 0, len(s.docs))
	for y := range s.docs {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

const log2026 = `---
tags: [dailylog]
---
# 데일리로그 2026

## 1월

### 1월 2주차

#### 2026-01-10 (토)

##### 회사
- 2026-01-10 09:00:00 kickoff [[Project A]]

##### 개인
-

##### 스크랩
- 2026-01-10 21:10:00 read [[Go Generics]]

##### 아이디어
-

---

#### 2026-01-08 (목)

##### 회사
- standup

##### 개인
- run [[Health]]

##### 스크랩
-

##### 아이디어
- 일정 자동화

---
`

const log2025 = `# 데일리로그 2025

#### 2025-12-31 (수)

##### 회사
- year end review [[Project A]]

##### 개인
-

##### 스크랩
-

##### 아이디어
-

---
`

func fixedClock() time.Time {
	return time.Date(2026, 1, 10, 14, 30, 5, 0, time.Local)
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
