// Package config handles XDG directories and the optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.yaml"

	// SnapshotFile is the snapshot filename used by the file backend.
	SnapshotFile = "todos.json"

	// DatabaseFile is the database filename used by the sqlite backend.
	DatabaseFile = "todos.db"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// DataDir holds the persisted task list.
	DataDir string `yaml:"data_dir" env:"TODO_DATA_DIR"`

	// Backend selects the storage backend: "file" or "sqlite".
	Backend string `yaml:"backend" env:"TODO_BACKEND"`

	// SeedText is the text of the default task shown when nothing is stored.
	SeedText string `yaml:"seed_text" env:"TODO_SEED_TEXT"`

	// KeepEmpty keeps a deliberately emptied list empty across restarts.
	KeepEmpty bool `yaml:"keep_empty" env:"TODO_KEEP_EMPTY"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`
}

// New creates a Config for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings come from config.yaml in that directory (if present) and
// TODO_* environment variables, the latter taking precedence.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{}
	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("invalid environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat %s: %w", ConfigFile, err)
	}

	cfg.Dir = dir
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that settings hold supported values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// SnapshotPath returns the path of the file backend's snapshot.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, SnapshotFile)
}

// DatabasePath returns the path of the sqlite backend's database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}
