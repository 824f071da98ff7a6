// ABOUTME: ftracker configuration management.
// ABOUTME: Handles the report format, log level, and packages file preferences.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/ftracker/internal/report"
	"github.com/rs/zerolog"
)

// Config stores ftracker preferences. Formula constants are not configurable.
type Config struct {
	// Format selects the default report format: "text" (default), "json", "yaml", or "markdown".
	Format string `json:"format,omitempty"`

	// LogLevel is a zerolog level name. Defaults to "warn".
	LogLevel string `json:"log_level,omitempty"`

	// Packages is an optional YAML file of packages used instead of the built-in samples.
	// Supports ~ expansion for home directory.
	Packages string `json:"packages,omitempty"`
}

// GetFormat returns the configured report format, defaulting to text.
func (c *Config) GetFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// GetPackagesPath returns the packages file with ~ expanded, or "" if unset.
func (c *Config) GetPackagesPath() string {
	return ExpandPath(c.Packages)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ftracker", "config.json")
}

// Load reads config from disk. A missing file yields the defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
