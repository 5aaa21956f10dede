package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/unicode/norm"
)

// YearPlaceholder is replaced by the four-digit year in a path pattern
const YearPlaceholder = "{year}"

// DefaultPathPattern locates the yearly document relative to the vault root
const DefaultPathPattern = "02_Areas/일지/데일리로그 {year}.md"

// Store implements ports.LogStore on top of the vault directory
type Store struct {
	vaultPath string
	pattern   string
	yearRegex *regexp.Regexp
}

// NewStore creates a store rooted at vaultPath. A leading ~ is expanded and
// an empty pattern selects DefaultPathPattern.
func NewStore(vaultPath, pattern string) (*Store, error) {
	expanded, err := homedir.Expand(vaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand vault path: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}

	if pattern == "" {
		pattern = DefaultPathPattern
	}
	pattern = norm.NFC.String(filepath.ToSlash(pattern))
	if !strings.Contains(pattern, YearPlaceholder) {
		return nil, fmt.Errorf("path pattern %q has no %s placeholder", pattern, YearPlaceholder)
	}

	quoted := regexp.QuoteMeta(pattern)
	quotedPlaceholder := regexp.QuoteMeta(YearPlaceholder)
	yearRegex := regexp.MustCompile("^" + strings.Replace(quoted, quotedPlaceholder, `(\d{4})`, 1) + "$")

	return &Store{vaultPath: abs, pattern: pattern, yearRegex: yearRegex}, nil
}

// VaultPath returns the absolute vault root
func (s *Store) VaultPath() string {
	return s.vaultPath
}

// Path returns the absolute path of the document for a year
func (s *Store) Path(year int) string {
	rel := strings.ReplaceAll(s.pattern, YearPlaceholder, fmt.Sprintf("%04d", year))
	return filepath.Join(s.vaultPath, filepath.FromSlash(rel))
}

// Exists reports whether the document for a year is present
func (s *Store) Exists(year int) bool {
	info, err := os.Stat(s.Path(year))
	return err == nil && !info.IsDir()
}

// Read returns the document for a year
func (s *Store) Read(year int) (string, error) {
	data, err := os.ReadFile(s.Path(year))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the document for a year. An existing file keeps its mode.
func (s *Store) Write(year int, content string) error {
	path := s.Path(year)

	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Debug("wrote log", "year", year, "path", path, "bytes", len(content))
	return nil
}

// ModTime returns the last modification time of the document for a year
func (s *Store) ModTime(year int) (time.Time, error) {
	info, err := os.Stat(s.Path(year))
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Glob returns the doublestar pattern matching every yearly document,
// relative to the vault root
func (s *Store) Glob() string {
	return strings.ReplaceAll(s.pattern, YearPlaceholder, "[0-9][0-9][0-9][0-9]")
}

// Years lists the years that have a document, ascending
func (s *Store) Years() ([]int, error) {
	matches, err := doublestar.Glob(os.DirFS(s.vaultPath), s.Glob(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	var years []int
	for _, m := range matches {
		year, ok := s.YearOf(m)
		if !ok {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}

// YearOf extracts the year from a document path, absolute or relative to the vault
func (s *Store) YearOf(path string) (int, bool) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(s.vaultPath, path)
		if err != nil {
			return 0, false
		}
		path = rel
	}
	// macOS may report decomposed Hangul file names
	m := s.yearRegex.FindStringSubmatch(norm.NFC.String(filepath.ToSlash(path)))
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
