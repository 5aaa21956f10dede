package ports

import "dailylog/internal/domain"

// LinkIndex caches the [[wiki link]] graph of the year documents.
// The year files stay the source of truth; the index can be dropped and rebuilt.
type LinkIndex interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Link queries
	FindBacklinks(target string) ([]domain.LinkRef, error)
	FindLinksFromDate(date string) ([]domain.LinkRef, error)
	TopTargets(limit int) ([]domain.LinkCount, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic cache updates
type IndexTx interface {
	Reset() error
	UpsertFile(year int, path string, mtime int64) error
	DeleteFile(year int) error
	DeleteLinksFromYear(year int) error
	InsertLink(year int, ref *domain.LinkRef) error

	// Transaction control
	Commit() error
	Rollback() error
}
