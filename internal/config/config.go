// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Data    DataConfig    `toml:"data"`
}

// ServiceConfig holds remote task service settings.
type ServiceConfig struct {
	BaseURL string `toml:"base_url"`
}

// DataConfig holds local persistence settings.
type DataConfig struct {
	// Path of the JSON file backing tags and the theme preference.
	StatePath string `toml:"state_path"`
}

// Default returns the default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Data: DataConfig{
			StatePath: filepath.Join(homeDir, ".config", "tasktique", "state.json"),
		},
	}
}

// Load loads configuration from the standard location.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "tasktique", "config.toml")
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Data.StatePath != "" {
		cfg.Data.StatePath = expandPath(cfg.Data.StatePath)
	}

	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
