// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/cadence/pkg/ux"
	"github.com/AleutianAI/cadence/services/tracker/engine"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme",
	Args:  cobra.MaximumNArgs(1),
	Run:   runThemeCommand,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runThemeCommand(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		settings := tracker.Settings.Load()
		ux.Info(fmt.Sprintf("theme: %s", settings.Theme))
		return
	}

	req := ThemeRequest{Theme: args[0]}
	if err := req.Validate(); err != nil {
		fail(fmt.Sprintf("invalid theme: %v", err))
	}

	settings := tracker.Settings.Load()
	settings.Theme = engine.Theme(req.Theme)
	if err := tracker.Settings.Save(settings); err != nil {
		fail(fmt.Sprintf("save settings: %v", err))
	}
	ux.SetTheme(req.Theme)
	ux.Success(fmt.Sprintf("theme set to %s", req.Theme))
}
