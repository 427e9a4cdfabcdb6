// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package config loads gcalc settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all gcalc configuration.
type Config struct {
	// Display
	Format       string `yaml:"format"` // C, R, I or M
	ShowClass    bool   `yaml:"show_class"`
	ShowIdentity bool   `yaml:"show_identity"`

	// Parallelism for batch identity derivation; 0 means one per CPU
	Workers int `yaml:"workers"`

	Registry RegistryConfig `yaml:"registry"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RegistryConfig configures the sqlite identity registry.
type RegistryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Format: "C",
		Registry: RegistryConfig{
			Path: defaultRegistryPath(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func defaultRegistryPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gcalc-identities.sqlite3"
	}
	return filepath.Join(homeDir, "data", "gcalc-identities.sqlite3")
}

// DefaultPath returns $GCALC_CONFIG or ~/.config/gcalc/config.yaml.
func DefaultPath() string {
	if path := os.Getenv("GCALC_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gcalc.yaml"
	}
	return filepath.Join(dir, "gcalc", "config.yaml")
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail later, far from the file.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.Format) {
	case "C", "R", "I", "M":
	default:
		return fmt.Errorf("invalid format %q: want one of C, R, I, M", c.Format)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d: must not be negative", c.Workers)
	}
	return nil
}

// FormatCode returns the display format as a Render code.
func (c *Config) FormatCode() rune {
	if c.Format == "" {
		return 'C'
	}
	return rune(strings.ToUpper(c.Format)[0])
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if format := os.Getenv("GCALC_FORMAT"); format != "" {
		c.Format = format
	}
	if path := os.Getenv("GCALC_REGISTRY"); path != "" {
		c.Registry.Path = path
		c.Registry.Enabled = true
	}
	if level := os.Getenv("GCALC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if workers := os.Getenv("GCALC_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil {
			c.Workers = n
		}
	}
}
