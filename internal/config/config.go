// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "userdash"

	// StoreFile is the durable state file holding the session, tasks,
	// and theme preference.
	StoreFile = "user-dashboard-storage.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/userdash or
// $HOME/.config/userdash.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
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

// StorePath returns the path to the durable state file.
func (c *Config) StorePath() string {
	return filepath.Join(c.Dir, StoreFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasStore checks if the durable state file exists.
func (c *Config) HasStore() bool {
	_, err := os.Stat(c.StorePath())
	return err == nil
}
