package sqlite

import (
	"database/sql"

	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// Reset clears every file and link
func (t *indexTx) Reset() error {
	if _, err := t.tx.Exec(`DELETE FROM links`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM files`)
	return err
}

// UpsertFile records the modification time a year document was indexed at
func (t *indexTx) UpsertFile(year int, path string, mtime int64) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO files (year, path, mtime)
		VALUES (?, ?, ?)
	`, year, path, mtime)
	return err
}

// DeleteFile forgets a year document
func (t *indexTx) DeleteFile(year int) error {
	_, err := t.tx.Exec(`DELETE FROM files WHERE year = ?`, year)
	return err
}

// DeleteLinksFromYear removes all links of a year document
func (t *indexTx) DeleteLinksFromYear(year int) error {
	_, err := t.tx.Exec(`DELETE FROM links WHERE year = ?`, year)
	return err
}

// InsertLink adds one link occurrence
func (t *indexTx) InsertLink(year int, ref *domain.LinkRef) error {
	_, err := t.tx.Exec(`
		INSERT INTO links (year, date, category, target, link_text, line)
		VALUES (?, ?, ?, ?, ?, ?)
	`, year, ref.Date, ref.Category.String(), ref.Target, ref.LinkText, ref.Line)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
