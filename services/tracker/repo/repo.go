// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package repo owns the persisted representation of every tracker entity.
//
// All store-facing operations are boundary-guarded per the error taxonomy:
// a failed or corrupt read degrades to an empty/default value and is
// reported, never propagated as a crash; a failed write is reported and
// returned so the UI can show a transient notification, with the computed
// in-memory state intact. Pure computation lives in the engine package and
// is never reached by a store error.
package repo

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrHabitNotFound is returned when a mutation names an unknown habit id.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrInvalidDay is returned when a calendar-day string fails validation.
	// This is a caller error; nothing is mutated.
	ErrInvalidDay = errors.New("invalid calendar day, want YYYY-MM-DD")
)

// -----------------------------------------------------------------------------
// Tracer
// -----------------------------------------------------------------------------

var tracer trace.Tracer = otel.Tracer("cadence.tracker.repo")

// -----------------------------------------------------------------------------
// Tracker
// -----------------------------------------------------------------------------

// Tracker bundles every per-key repository over one ledger store. It is the
// single object the CLI wires up.
type Tracker struct {
	Habits   *HabitRepository
	Scores   *ScoreStore
	Settings *SettingsStore
	Tasks    *TaskStore
	Errors   *ErrorLog
}

// storeAPI is the slice of the ledger store this package needs. It matches
// store.Store; declared locally so tests can substitute failing doubles.
type storeAPI interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// NewTracker builds the repository set on one store. logger may be nil, in
// which case slog.Default() is used.
func NewTracker(s storeAPI, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	errlog := &ErrorLog{store: s, logger: logger, now: time.Now}
	return &Tracker{
		Habits:   NewHabitRepository(s, logger, errlog),
		Scores:   &ScoreStore{store: s, logger: logger, errlog: errlog, now: time.Now},
		Settings: &SettingsStore{store: s, logger: logger},
		Tasks:    &TaskStore{store: s, logger: logger, errlog: errlog},
		Errors:   errlog,
	}
}
