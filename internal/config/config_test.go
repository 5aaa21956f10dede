package config

import (
	"os"
	"path/filepath"
	"testing"

	"dailylog/internal/adapters/filesystem"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DAILYLOG_VAULT", "")
	t.Setenv("DAILYLOG_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Vault != DefaultVaultPath {
		t.Errorf("Vault = %q, want %q", cfg.Vault, DefaultVaultPath)
	}
	if cfg.PathPattern != filesystem.DefaultPathPattern {
		t.Errorf("PathPattern = %q", cfg.PathPattern)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.File != "" {
		t.Errorf("no config file expected, got %q", cfg.File)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dailylog.yaml")
	content := "vault: /notes\npath_pattern: journal/{year}.md\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vault", cfg.Vault, "/notes"},
		{"path_pattern", cfg.PathPattern, "journal/{year}.md"},
		{"log_level", cfg.LogLevel, "debug"},
		{"file", cfg.File, path},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dailylog.yaml")
	if err := os.WriteFile(path, []byte("vault: /notes\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAILYLOG_VAULT", "/from-env")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Vault != "/from-env" {
		t.Errorf("Vault = %q, want /from-env", cfg.Vault)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("vault: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(New(), path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestVaultPath(t *testing.T) {
	t.Setenv("DAILYLOG_VAULT", "")
	if got := VaultPath(); got != DefaultVaultPath {
		t.Errorf("VaultPath() = %q, want %q", got, DefaultVaultPath)
	}

	t.Setenv("DAILYLOG_VAULT", "/vault")
	if got := VaultPath(); got != "/vault" {
		t.Errorf("VaultPath() = %q, want /vault", got)
	}
}
