package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dailylog/internal/application"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// loadYear parses the document for one year.
// A missing document is reported as a YearNotFoundError.
func loadYear(store ports.LogStore, year int) (string, *domain.Log, error) {
	content, err := store.Read(year)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, &application.YearNotFoundError{Year: year, Path: store.Path(year)}
		}
		return "", nil, fmt.Errorf("failed to read log for %d: %w", year, err)
	}
	return content, domain.Parse(content), nil
}

// loadRange parses every existing year document overlapping [start, end]
// and merges them by date. Missing years are skipped.
func loadRange(store ports.LogStore, start, end time.Time) (*domain.Log, error) {
	merged := domain.NewLog()
	for _, year := range domain.YearsBetween(start, end) {
		if !store.Exists(year) {
			slog.Debug("skipping missing year", "year", year, "path", store.Path(year))
			continue
		}
		_, log, err := loadYear(store, year)
		if err != nil {
			return nil, err
		}
		merged.Merge(log)
	}
	return merged, nil
}
