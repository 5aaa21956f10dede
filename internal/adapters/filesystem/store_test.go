package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/unicode/norm"
)

func setupTestVault(t *testing.T, years ...string) (string, *Store) {
	t.Helper()
	vault := t.TempDir()

	dir := filepath.Join(vault, "02_Areas", "일지")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create log dir: %v", err)
	}
	for _, y := range years {
		path := filepath.Join(dir, "데일리로그 "+y+".md")
		if err := os.WriteFile(path, []byte("# 데일리로그 "+y+"\n"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	store, err := NewStore(vault, "")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return vault, store
}

func TestNewStore_RejectsPatternWithoutYear(t *testing.T) {
	if _, err := NewStore(t.TempDir(), "logs/daily.md"); err == nil {
		t.Error("expected error for pattern without placeholder")
	}
}

func TestNewStore_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	store, err := NewStore("~/vault", "")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if !strings.HasPrefix(store.VaultPath(), home) {
		t.Errorf("VaultPath = %s, want prefix %s", store.VaultPath(), home)
	}
}

func TestStore_Path(t *testing.T) {
	vault, store := setupTestVault(t)
	want := filepath.Join(vault, "02_Areas", "일지", "데일리로그 2026.md")
	if got := store.Path(2026); got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
}

func TestStore_ReadWrite(t *testing.T) {
	_, store := setupTestVault(t, "2026")

	if !store.Exists(2026) {
		t.Fatal("expected 2026 to exist")
	}
	content, err := store.Read(2026)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "# 데일리로그 2026\n" {
		t.Errorf("content = %q", content)
	}

	if err := store.Write(2026, content+"\n## 1월\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	updated, _ := store.Read(2026)
	if !strings.HasSuffix(updated, "## 1월\n") {
		t.Errorf("write not persisted: %q", updated)
	}

	info, err := os.Stat(store.Path(2026))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}

	if _, err := store.ModTime(2026); err != nil {
		t.Errorf("ModTime failed: %v", err)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	_, store := setupTestVault(t)

	if store.Exists(2026) {
		t.Error("2026 should not exist")
	}
	if _, err := store.Read(2026); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestStore_Years(t *testing.T) {
	vault, store := setupTestVault(t, "2026", "2024", "2025")

	// files that must be ignored
	dir := filepath.Join(vault, "02_Areas", "일지")
	os.WriteFile(filepath.Join(dir, "데일리로그 draft.md"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "데일리로그 2023.txt"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(dir, "데일리로그 2022.md"), 0755)

	years, err := store.Years()
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}
	if len(years) != 3 || years[0] != 2024 || years[1] != 2025 || years[2] != 2026 {
		t.Errorf("Years = %v, want [2024 2025 2026]", years)
	}
}

func TestStore_YearOf(t *testing.T) {
	vault, store := setupTestVault(t)

	tests := []struct {
		name   string
		path   string
		want   int
		wantOK bool
	}{
		{"relative", "02_Areas/일지/데일리로그 2026.md", 2026, true},
		{"absolute", filepath.Join(vault, "02_Areas", "일지", "데일리로그 2025.md"), 2025, true},
		{"decomposed hangul", norm.NFD.String("02_Areas/일지/데일리로그 2024.md"), 2024, true},
		{"other note", "02_Areas/일지/메모.md", 0, false},
		{"outside pattern", "데일리로그 2026.md", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := store.YearOf(tt.path)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("YearOf(%q) = %d, %v; want %d, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStore_CustomPattern(t *testing.T) {
	vault := t.TempDir()
	os.MkdirAll(filepath.Join(vault, "journal", "2026"), 0755)
	os.WriteFile(filepath.Join(vault, "journal", "2026", "log.md"), []byte(""), 0644)

	store, err := NewStore(vault, "journal/{year}/log.md")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	years, err := store.Years()
	if err != nil {
		t.Fatalf("Years failed: %v", err)
	}
	if len(years) != 1 || years[0] != 2026 {
		t.Errorf("Years = %v", years)
	}
}
