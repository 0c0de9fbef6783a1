// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFileUsesDefaults verifies an absent config file is fine.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_FileOverridesDefaults verifies file fields win, absent fields
// keep defaults.
func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nquiet: true\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, Default().DataDir, cfg.DataDir)
}

// TestLoad_RejectsBadValues verifies invalid files error instead of being
// silently half-applied.
func TestLoad_RejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("log_level: [broken\n"), 0600))
	_, err := Load(badYAML)
	assert.Error(t, err)

	badLevel := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(badLevel, []byte("log_level: loud\n"), 0600))
	_, err = Load(badLevel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	emptyDir := filepath.Join(dir, "datadir.yaml")
	require.NoError(t, os.WriteFile(emptyDir, []byte(`data_dir: ""`+"\n"), 0600))
	_, err = Load(emptyDir)
	assert.Error(t, err)
}
