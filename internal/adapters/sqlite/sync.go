package sqlite

import (
	"fmt"
	"log/slog"
	"time"

	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	years, err := idx.store.Years()
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.Reset(); err != nil {
		return nil, err
	}

	for _, year := range years {
		stats.FilesScanned++
		n, err := idx.indexYear(tx, year)
		if err != nil {
			return stats, err
		}
		stats.FilesUpdated++
		stats.LinksAdded += n
	}

	if err := tx.Commit(); err != nil {
		return stats, err
	}
	if err := idx.updateMeta(); err != nil {
		return stats, fmt.Errorf("failed to update metadata: %w", err)
	}

	stats.Duration = time.Since(start)
	slog.Debug("index rebuilt", "files", stats.FilesScanned, "links", stats.LinksAdded, "took", stats.Duration)
	return stats, nil
}

// SyncIncremental re-indexes only the year documents whose modification
// time differs from the one recorded, and drops documents that disappeared
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	known := make(map[int]int64)
	rows, err := idx.db.Query(`SELECT year, mtime FROM files`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var year int
		var mtime int64
		if err := rows.Scan(&year, &mtime); err != nil {
			rows.Close()
			return nil, err
		}
		known[year] = mtime
	}
	rows.Close()

	years, err := idx.store.Years()
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seen := make(map[int]bool, len(years))
	for _, year := range years {
		seen[year] = true
		stats.FilesScanned++

		mtime, err := idx.store.ModTime(year)
		if err != nil {
			return stats, fmt.Errorf("failed to stat log for %d: %w", year, err)
		}
		if prev, ok := known[year]; ok && prev == mtime.UnixNano() {
			continue
		}

		removed, err := idx.countLinks(year)
		if err != nil {
			return stats, err
		}
		if err := tx.DeleteLinksFromYear(year); err != nil {
			return stats, err
		}
		stats.LinksDeleted += removed

		n, err := idx.indexYear(tx, year)
		if err != nil {
			return stats, err
		}
		stats.FilesUpdated++
		stats.LinksAdded += n
	}

	for year := range known {
		if seen[year] {
			continue
		}
		removed, err := idx.countLinks(year)
		if err != nil {
			return stats, err
		}
		if err := tx.DeleteLinksFromYear(year); err != nil {
			return stats, err
		}
		if err := tx.DeleteFile(year); err != nil {
			return stats, err
		}
		stats.FilesDeleted++
		stats.LinksDeleted += removed
	}

	if err := tx.Commit(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	slog.Debug("index synced",
		"scanned", stats.FilesScanned,
		"updated", stats.FilesUpdated,
		"deleted", stats.FilesDeleted,
		"took", stats.Duration,
	)
	return stats, nil
}

// indexYear parses one year document and writes its links through tx
func (idx *Index) indexYear(tx ports.IndexTx, year int) (int, error) {
	content, err := idx.store.Read(year)
	if err != nil {
		return 0, fmt.Errorf("failed to read log for %d: %w", year, err)
	}
	mtime, err := idx.store.ModTime(year)
	if err != nil {
		return 0, fmt.Errorf("failed to stat log for %d: %w", year, err)
	}

	refs := domain.CollectLinks(domain.Parse(content))
	for i := range refs {
		if err := tx.InsertLink(year, &refs[i]); err != nil {
			return 0, fmt.Errorf("failed to index link: %w", err)
		}
	}
	if err := tx.UpsertFile(year, idx.store.Path(year), mtime.UnixNano()); err != nil {
		return 0, err
	}
	return len(refs), nil
}

func (idx *Index) countLinks(year int) (int, error) {
	var n int
	err := idx.db.QueryRow(`SELECT COUNT(*) FROM links WHERE year = ?`, year).Scan(&n)
	return n, err
}
