// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validation

import (
	"strings"
	"testing"
)

func TestValidateHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Valid names
		{"simple", "Morning run", false},
		{"single char", "x", false},
		{"unicode", "早起", false},
		{"emoji", "Drink water 💧", false},
		{"max length", strings.Repeat("a", 60), false},
		{"padded", "  run  ", false},

		// Invalid names
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 61), true},
		{"newline", "run\nrm -rf", true},
		{"tab", "run\tfast", true},
		{"null byte", "run\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIcon(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"emoji", "🏃", false},
		{"compound emoji", "🏋️‍♀️", false},
		{"ascii", "*", false},
		{"too long", strings.Repeat("x", 9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIcon(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIcon(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Valid days
		{"normal", "2025-03-07", false},
		{"leap day", "2024-02-29", false},
		{"year start", "2025-01-01", false},

		// Invalid days
		{"empty", "", true},
		{"no padding", "2025-3-7", true},
		{"slashes", "2025/03/07", true},
		{"not a date", "2025-02-30", true},
		{"non leap", "2025-02-29", true},
		{"month 13", "2025-13-01", true},
		{"garbage", "tomorrow", true},
		{"injection", "2025-03-07'; drop", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTheme(t *testing.T) {
	if err := ValidateTheme("light"); err != nil {
		t.Errorf("light should be valid: %v", err)
	}
	if err := ValidateTheme("dark"); err != nil {
		t.Errorf("dark should be valid: %v", err)
	}
	if err := ValidateTheme("sepia"); err == nil {
		t.Error("sepia should be rejected")
	}
	if err := ValidateTheme(""); err == nil {
		t.Error("empty should be rejected")
	}
}
