package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"dailylog/internal/domain"
	"dailylog/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.LinkIndex using SQLite
type Index struct {
	db     *sql.DB
	store  ports.LogStore
	dbPath string
}

// Ensure Index implements LinkIndex
var _ ports.LinkIndex = (*Index)(nil)

// NewIndex creates a new SQLite index over the documents of store
func NewIndex(store ports.LogStore) *Index {
	return &Index{store: store}
}

// Open initializes the database at dbPath, creating it when needed.
// An empty dbPath selects DatabasePath for the store.
func (idx *Index) Open(dbPath string) error {
	if dbPath == "" {
		dbPath = DatabasePath(idx.store.Path(0))
	}
	expanded, err := homedir.Expand(dbPath)
	if err != nil {
		return fmt.Errorf("failed to expand index path: %w", err)
	}
	idx.dbPath = expanded

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS files (
			year INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			year INTEGER NOT NULL,
			date TEXT NOT NULL,
			category TEXT NOT NULL,
			target TEXT NOT NULL,
			link_text TEXT NOT NULL,
			line TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target COLLATE NOCASE);
		CREATE INDEX IF NOT EXISTS idx_links_date ON links(date);
		CREATE INDEX IF NOT EXISTS idx_links_year ON links(year);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsFullRebuild returns true when the index was built by another schema
// version or for documents at a different location
func (idx *Index) NeedsFullRebuild() bool {
	var version, sourceHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'source_hash'").Scan(&sourceHash)

	return version != schemaVersion || sourceHash != hashSource(idx.store.Path(0))
}

// DatabasePath returns the default database location for a document set,
// under the XDG data directory
func DatabasePath(source string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := homedir.Dir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dailylog", hashSource(source)+".db")
}

// hashSource returns a short hash identifying the document location
func hashSource(source string) string {
	h := sha256.Sum256([]byte(source))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta records the schema version and source hash after a full build
func (idx *Index) updateMeta() error {
	if _, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		return err
	}
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('source_hash', ?)`, hashSource(idx.store.Path(0)))
	return err
}

// FindBacklinks returns the items linking to target, newest first.
// Targets compare case-insensitively, as Obsidian resolves them.
func (idx *Index) FindBacklinks(target string) ([]domain.LinkRef, error) {
	return idx.queryRefs(`
		SELECT target, link_text, date, category, line
		FROM links WHERE target = ? COLLATE NOCASE
		ORDER BY date DESC, rowid
	`, target)
}

// FindLinksFromDate returns the links written on one day
func (idx *Index) FindLinksFromDate(date string) ([]domain.LinkRef, error) {
	return idx.queryRefs(`
		SELECT target, link_text, date, category, line
		FROM links WHERE date = ?
		ORDER BY rowid
	`, date)
}

func (idx *Index) queryRefs(query string, args ...any) ([]domain.LinkRef, error) {
	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.LinkRef
	for rows.Next() {
		var r domain.LinkRef
		var category string
		if err := rows.Scan(&r.Target, &r.LinkText, &r.Date, &category, &r.Line); err != nil {
			return nil, err
		}
		c, err := domain.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("corrupt index row for %s: %w", r.Date, err)
		}
		r.Category = c
		refs = append(refs, r)
	}

	return refs, rows.Err()
}

// TopTargets returns the most linked notes
func (idx *Index) TopTargets(limit int) ([]domain.LinkCount, error) {
	rows, err := idx.db.Query(`
		SELECT target, COUNT(*) AS n
		FROM links
		GROUP BY target COLLATE NOCASE
		ORDER BY n DESC, target
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.LinkCount
	for rows.Next() {
		var c domain.LinkCount
		if err := rows.Scan(&c.Target, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	if idx.db == nil {
		return nil, errors.New("index is not open")
	}
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}
