// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation for user-provided values.
//
// This package validates inputs that cross the CLI boundary before they
// reach the store: habit names, calendar days, and theme selectors. Keys
// derived from these values end up in the embedded database, so malformed
// input is rejected here rather than sanitized downstream.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxHabitNameLength caps habit names. Long names break list rendering and
// serve no tracking purpose.
const MaxHabitNameLength = 60

// MaxIconLength caps habit icons. An icon is a short glyph, typically a
// single emoji (which can span multiple runes with modifiers).
const MaxIconLength = 8

// dayPattern matches ISO calendar days, zero-padded: 2025-03-07.
var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateHabitName validates a habit name.
//
// Valid names:
//   - 1 to MaxHabitNameLength characters after trimming whitespace
//   - no control characters
//
// Returns an error if the name is invalid.
func ValidateHabitName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxHabitNameLength {
		return fmt.Errorf("habit name too long: %d characters (max %d)",
			utf8.RuneCountInString(trimmed), MaxHabitNameLength)
	}
	for _, r := range trimmed {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("habit name contains control characters")
		}
	}
	return nil
}

// ValidateIcon validates a habit icon glyph. Empty is allowed; the CLI
// falls back to a default marker.
func ValidateIcon(icon string) error {
	if icon == "" {
		return nil
	}
	if utf8.RuneCountInString(icon) > MaxIconLength {
		return fmt.Errorf("icon too long: %d runes (max %d)",
			utf8.RuneCountInString(icon), MaxIconLength)
	}
	return nil
}

// ValidateDay validates an ISO calendar day string (YYYY-MM-DD). The day
// must both match the pattern and name a real calendar date; 2025-02-30
// is rejected.
func ValidateDay(day string) error {
	if day == "" {
		return fmt.Errorf("day cannot be empty")
	}
	if !dayPattern.MatchString(day) {
		return fmt.Errorf("invalid day format: %q (expected YYYY-MM-DD)", day)
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return fmt.Errorf("invalid calendar day: %q", day)
	}
	return nil
}

// ValidateTheme validates a display theme selector.
func ValidateTheme(theme string) error {
	switch theme {
	case "light", "dark":
		return nil
	default:
		return fmt.Errorf("unknown theme: %q (must be light or dark)", theme)
	}
}
