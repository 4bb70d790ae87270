package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat SGMI configuration
type Config struct {
	Version     string `json:"version"`
	User        string `json:"user,omitempty"`          // Acting user stamped on movements and log entries
	DefaultYear int    `json:"default_year,omitempty"`  // Planning year for metrics and schedules
	DatabaseDir string `json:"database_dir,omitempty"`  // Override for the data directory
}

// LoadConfig reads .sgmi/config.json from the specified directory.
// Resolution order: dir only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".sgmi", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	sgmiDir := filepath.Join(dir, ".sgmi")
	if err := os.MkdirAll(sgmiDir, 0755); err != nil {
		return fmt.Errorf("failed to create .sgmi dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(sgmiDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// CurrentUser resolves the acting user name: SGMI_USER, then config, then
// the OS login name.
func CurrentUser(cfg *Config) string {
	if u := os.Getenv("SGMI_USER"); u != "" {
		return u
	}
	if cfg != nil && cfg.User != "" {
		return cfg.User
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "sgmi"
}
