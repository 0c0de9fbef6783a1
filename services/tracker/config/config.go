// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the cadence application configuration.
//
// Configuration is a single YAML file, by default ~/.cadence/config.yaml.
// A missing file is not an error; every field has a default so the CLI
// works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains all application settings.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// DataDir is the directory holding the BadgerDB ledger files.
	// Supports ~ expansion. Default: ~/.cadence/data
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// LogDir enables file logging when non-empty.
	// Supports ~ expansion. Default: "" (stderr only)
	LogDir string `json:"log_dir" yaml:"log_dir"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Quiet switches the CLI to plain machine-readable output; useful
	// when the rendered output is piped. Default: false.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return expandPath("~/.cadence/config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:  "~/.cadence/data",
		LogLevel: "info",
	}
}

// Load reads the config file at path, applying defaults for absent fields.
// A missing file returns Default() with no error; a present-but-invalid
// file is an error, since running against a half-read config silently
// ignores user intent.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(expandPath(path))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// ExpandedDataDir returns DataDir with ~ expanded.
func (c *Config) ExpandedDataDir() string {
	return expandPath(c.DataDir)
}

// ExpandedLogDir returns LogDir with ~ expanded, or "" when unset.
func (c *Config) ExpandedLogDir() string {
	if c.LogDir == "" {
		return ""
	}
	return expandPath(c.LogDir)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
