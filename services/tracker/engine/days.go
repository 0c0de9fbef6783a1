// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package engine

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day wire format used throughout the ledger.
// Days are compared as local calendar-day strings; there is no timezone
// handling beyond this single convention.
const DayLayout = "2006-01-02"

// DayString formats t as a calendar-day string in t's location.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD calendar day.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil && len(s) == len(DayLayout)
}

// AddDays returns the calendar day n days after day (negative n walks
// backward). day must be a valid calendar-day string; this is a
// precondition, so a malformed input panics rather than returning a
// quiet wrong answer.
func AddDays(day string, n int) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		panic(fmt.Sprintf("engine: invalid day %q: %v", day, err))
	}
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// Yesterday returns the calendar day before day.
func Yesterday(day string) string {
	return AddDays(day, -1)
}

// DayLabel formats a calendar day as a short M/D display label,
// e.g. "2025-03-07" -> "3/7".
func DayLabel(day string) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
