// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package engine implements the habit ledger core: streak recomputation,
// score awards, and read-only aggregates.
//
// Everything in this package is a pure computation over in-memory values.
// No function here touches the store; callers pass current state in and
// persist the returned values. Inputs are assumed valid (day strings are
// checked at the CLI boundary before they reach this package).
package engine

import "time"

// -----------------------------------------------------------------------------
// Habit
// -----------------------------------------------------------------------------

// Habit is a single tracked habit with its daily completion ledger.
//
// History keys are calendar-day strings in YYYY-MM-DD form. A key present
// with value false means "explicitly marked not completed"; an absent key
// means "no record for that day". The two are distinct for display purposes
// but identical for streak computation.
//
// Invariant: History[today] == CompletedToday whenever a record for today
// exists. If today is unrecorded, CompletedToday must be false (Load
// reconciles this on each day rollover).
type Habit struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	Streak         int             `json:"streak"`
	CompletedToday bool            `json:"completedToday"`
	History        map[string]bool `json:"history"`
}

// Clone returns a deep copy of the habit.
//
// The engine never mutates its inputs; every state transition operates on
// a clone so that callers can diff old against new.
func (h Habit) Clone() Habit {
	next := h
	next.History = make(map[string]bool, len(h.History)+1)
	for day, done := range h.History {
		next.History[day] = done
	}
	return next
}

// -----------------------------------------------------------------------------
// Score Ledger
// -----------------------------------------------------------------------------

// HabitScore is the per-habit slice of the score ledger.
type HabitScore struct {
	// TotalScore is the accumulated points for this habit. Never negative.
	TotalScore int `json:"totalScore"`

	// ConsecutiveDays mirrors the habit's streak at the last score event.
	ConsecutiveDays int `json:"consecutiveDays"`

	// LastRewardDay is the day the 7-day streak bonus was last paid.
	// Guards against paying the bonus twice on the same calendar day.
	LastRewardDay string `json:"lastRewardDay,omitempty"`
}

// ScoreLedger is the persisted record of per-habit and global point totals.
//
// TotalScore is intended to equal the sum of all per-habit totals, but the
// two are clamped at zero independently, so they can drift once a penalty
// hits either floor. The drift is accepted; see ApplyCompletionEvent.
type ScoreLedger struct {
	TotalScore  int                   `json:"totalScore"`
	LastUpdated time.Time             `json:"lastUpdated"`
	HabitScores map[string]HabitScore `json:"habitScores"`
}

// NewScoreLedger returns an empty ledger stamped with now.
func NewScoreLedger(now time.Time) ScoreLedger {
	return ScoreLedger{
		LastUpdated: now,
		HabitScores: make(map[string]HabitScore),
	}
}

// Clone returns a deep copy of the ledger.
func (l ScoreLedger) Clone() ScoreLedger {
	next := l
	next.HabitScores = make(map[string]HabitScore, len(l.HabitScores))
	for id, hs := range l.HabitScores {
		next.HabitScores[id] = hs
	}
	return next
}

// -----------------------------------------------------------------------------
// Generic Tasks & Health
// -----------------------------------------------------------------------------

// GenericTask is an independent success/fail counter, unrelated to Habit.
// Tasks come from the monitoring surface and are classified, never mutated,
// by this package.
type GenericTask struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Success int    `json:"success"`
	Fail    int    `json:"fail"`
}

// HealthStatus classifies a task's success ratio.
type HealthStatus string

const (
	// StatusInsufficientData means fewer than MinHealthSamples runs were
	// recorded; the ratio is not trustworthy yet.
	StatusInsufficientData HealthStatus = "insufficient_data"

	// StatusUnhealthy means the health score is below 60.
	StatusUnhealthy HealthStatus = "unhealthy"

	// StatusFair means the health score is in [60, 90).
	StatusFair HealthStatus = "fair"

	// StatusHealthy means the health score is 90 or above.
	StatusHealthy HealthStatus = "healthy"
)

// MinHealthSamples is the minimum success+fail total before a ratio is
// considered meaningful.
const MinHealthSamples = 3

// TaskHealth is the derived classification for one task. Not persisted.
type TaskHealth struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Success int          `json:"success"`
	Fail    int          `json:"fail"`
	Health  int          `json:"health"` // 0-100
	Status  HealthStatus `json:"status"`
}

// -----------------------------------------------------------------------------
// Settings & Error Log
// -----------------------------------------------------------------------------

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings holds user preferences persisted under the "settings" key.
type Settings struct {
	Theme Theme `json:"theme"`
}

// DefaultSettings returns the settings used when none are persisted.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight}
}

// ErrorEntry is one record in the append-only error log.
type ErrorEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Stack     string    `json:"stack,omitempty"`
	Component string    `json:"componentName,omitempty"`
}
