package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"dailylog/internal/adapters/filesystem"
)

// DefaultVaultPath is the vault used when nothing else is configured
const DefaultVaultPath = "."

// EnvPrefix prefixes every environment override, e.g. DAILYLOG_VAULT
const EnvPrefix = "DAILYLOG"

// Config keys
const (
	KeyVault       = "vault"
	KeyPathPattern = "path_pattern"
	KeyIndexPath   = "index_path"
	KeyLogLevel    = "log_level"
)

// Config holds the resolved settings
type Config struct {
	Vault       string
	PathPattern string
	IndexPath   string // empty selects the XDG data directory
	LogLevel    string
	File        string // config file that was read, if any
}

// New returns a viper instance with defaults, the config search path and
// environment overrides set up. Callers may bind flags before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyVault, DefaultVaultPath)
	v.SetDefault(KeyPathPattern, filesystem.DefaultPathPattern)
	v.SetDefault(KeyIndexPath, "")
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and resolves the settings.
// Without cfgFile it looks for .dailylog.yaml in $HOME and the working
// directory; a missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".dailylog")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	vault, err := homedir.Expand(v.GetString(KeyVault))
	if err != nil {
		return nil, fmt.Errorf("failed to expand vault path: %w", err)
	}
	indexPath, err := homedir.Expand(v.GetString(KeyIndexPath))
	if err != nil {
		return nil, fmt.Errorf("failed to expand index path: %w", err)
	}

	return &Config{
		Vault:       vault,
		PathPattern: v.GetString(KeyPathPattern),
		IndexPath:   indexPath,
		LogLevel:    v.GetString(KeyLogLevel),
		File:        v.ConfigFileUsed(),
	}, nil
}

// VaultPath returns the vault path from DAILYLOG_VAULT,
// falling back to DefaultVaultPath
func VaultPath() string {
	if env := os.Getenv(EnvPrefix + "_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}
