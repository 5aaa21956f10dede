package ports

import "time"

// LogStore is the storage for yearly daily-log documents.
// Each year maps to exactly one Markdown file inside the vault.
type LogStore interface {
	// Path returns the absolute path of the document for a year
	Path(year int) string

	// Exists reports whether the document for a year is present
	Exists(year int) bool

	// Read returns the whole document for a year.
	// A missing file yields an error matching os.ErrNotExist.
	Read(year int) (string, error)

	// Write replaces the document for a year, keeping its permissions
	Write(year int, content string) error

	// ModTime returns the last modification time of the document
	ModTime(year int) (time.Time, error)

	// Years lists the years that have a document, ascending
	Years() ([]int, error)
}
