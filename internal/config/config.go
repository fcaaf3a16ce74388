// Package config loads the optional nbscan rc file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nbtools/nbscan/internal/errors"
)

// FileName is the rc file looked up in the working directory and $HOME.
const FileName = ".nbscan.yaml"

// Config holds the user's persistent defaults. Command-line flags override
// everything in here.
type Config struct {
	// Color is one of "auto", "always", or "never".
	Color string `yaml:"color"`

	// SubmittedRoot is the directory walked for --submitted filters.
	SubmittedRoot string `yaml:"submitted_root"`

	// Dirs are searched when no files or directories are given on the
	// command line.
	Dirs []string `yaml:"dirs"`

	// LogLevel is one of "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:         "auto",
		SubmittedRoot: "submitted",
		LogLevel:      "info",
	}
}

// Load reads the config file at path. The file must exist and parse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config file %s", path)
	}

	return cfg, nil
}

// LoadDefault looks for the rc file in the working directory, then $HOME.
// A missing file yields the built-in defaults.
func LoadDefault() (*Config, error) {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}

	return Default(), nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return errors.Validation(fmt.Sprintf("color must be auto, always, or never, got %q", c.Color))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Validation(fmt.Sprintf("unknown log_level %q", c.LogLevel))
	}

	return nil
}

// ColorEnabled resolves the color setting against whether stdout is a
// terminal.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}
