package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces
const DefaultDebounce = 150 * time.Millisecond

// Documents locates the yearly documents; filesystem.Store implements it
type Documents interface {
	VaultPath() string
	Glob() string
	Path(year int) string
	YearOf(path string) (int, bool)
}

// Event reports that the document of a year changed on disk
type Event struct {
	Year int
	Path string
	Op   fsnotify.Op
}

// Watcher monitors the directories holding the yearly documents.
// Directories are watched rather than files so that editors replacing a
// file through rename keep being observed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	docs     Documents
	Events   chan Event
	Debounce time.Duration
	dirs     []string
}

// New creates a Watcher for every directory that holds a yearly document,
// plus the directory of the current year's document when it exists
func New(docs Documents) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		docs:     docs,
		Events:   make(chan Event, 64),
		Debounce: DefaultDebounce,
	}

	dirs, err := w.expandDirs()
	if err != nil {
		fsw.Close()
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			slog.Warn("cannot watch directory", "dir", dir, "error", err)
			continue
		}
		w.dirs = append(w.dirs, dir)
	}

	return w, nil
}

// expandDirs resolves the document glob to the set of parent directories
func (w *Watcher) expandDirs() ([]string, error) {
	vault := w.docs.VaultPath()
	matches, err := doublestar.Glob(os.DirFS(vault), w.docs.Glob(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, m := range matches {
		seen[filepath.Dir(filepath.Join(vault, filepath.FromSlash(m)))] = true
	}

	current := filepath.Dir(w.docs.Path(time.Now().Year()))
	if info, err := os.Stat(current); err == nil && info.IsDir() {
		seen[current] = true
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Dirs returns the directories being watched
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Start forwards document changes to Events until ctx is cancelled.
// Events of one year that arrive within Debounce are delivered once.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	pending := make(map[int]Event)
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	flush := func() {
		years := make([]int, 0, len(pending))
		for y := range pending {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			select {
			case w.Events <- pending[y]:
			case <-ctx.Done():
				return
			}
			delete(pending, y)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			year, ok := w.docs.YearOf(ev.Name)
			if !ok {
				continue
			}
			slog.Debug("document changed", "year", year, "op", ev.Op.String())
			prev := pending[year]
			pending[year] = Event{Year: year, Path: ev.Name, Op: prev.Op | ev.Op}
			timer.Reset(w.Debounce)
		case <-timer.C:
			flush()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}
