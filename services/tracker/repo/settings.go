// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package repo

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// SettingsStore persists user preferences under "settings".
type SettingsStore struct {
	store  storeAPI
	logger *slog.Logger
}

// Load returns the persisted settings, falling back to defaults on any
// read failure.
func (s *SettingsStore) Load() engine.Settings {
	raw, err := s.store.Get(store.KeySettings)
	if err != nil {
		return engine.DefaultSettings()
	}
	var settings engine.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("settings corrupt, using defaults", "error", err.Error())
		return engine.DefaultSettings()
	}
	if settings.Theme != engine.ThemeLight && settings.Theme != engine.ThemeDark {
		return engine.DefaultSettings()
	}
	return settings
}

// Save persists the settings.
func (s *SettingsStore) Save(settings engine.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.store.Set(store.KeySettings, raw)
}
