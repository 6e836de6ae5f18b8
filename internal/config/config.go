// Package config loads and saves the calculator's JSON configuration from
// the platform config directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "termcalc"
	configFileName = "config.json"
	logFileName    = "termcalc.log"

	// DefaultPrecision is the number of fractional digits shown for
	// non-integer results before trailing zeros are trimmed.
	DefaultPrecision = 8
)

// Config represents application configuration.
type Config struct {
	LogLevel          string `json:"log_level"` // debug, info, warn, error, none
	LogPath           string `json:"-"`
	DisableAnimations bool   `json:"disable_animations"`
	DisableMouse      bool   `json:"disable_mouse"`
	Precision         int    `json:"precision,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel:  "none",
		LogPath:   defaultLogPath(),
		Precision: DefaultPrecision,
	}
}

// GetConfigPath returns the path of the config file inside the user
// config directory.
func GetConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appDirName, configFileName)
	}
	return filepath.Join(base, appDirName, configFileName)
}

func defaultLogPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, appDirName, logFileName)
}

// Load reads the config file at path. A missing file yields the defaults;
// a present but unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Precision <= 0 || c.Precision > 17 {
		c.Precision = DefaultPrecision
	}
	if c.LogPath == "" {
		c.LogPath = defaultLogPath()
	}
}
