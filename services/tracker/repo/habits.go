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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// HabitRepository exclusively owns the persisted habit list. The streak
// engine never writes to the store; it returns new values that this
// repository persists.
type HabitRepository struct {
	store  storeAPI
	logger *slog.Logger
	errlog *ErrorLog

	// newID generates habit ids. Overridable in tests.
	newID func() string
}

// NewHabitRepository builds a repository over the given store.
func NewHabitRepository(s storeAPI, logger *slog.Logger, errlog *ErrorLog) *HabitRepository {
	return &HabitRepository{
		store:  s,
		logger: logger,
		errlog: errlog,
		newID:  uuid.NewString,
	}
}

// Load returns the habit list reconciled against today: any habit whose
// most recent history record is older than today reads as not completed.
// The reconciliation is not written back; it happens again on every load.
//
// A missing key, unreachable store, or corrupt value degrades to an empty
// list. The failure is reported, never propagated.
func (r *HabitRepository) Load(ctx context.Context, today string) []engine.Habit {
	ctx, span := tracer.Start(ctx, "habits.load")
	defer span.End()

	habits := r.loadRaw(ctx)
	habits = engine.ReconcileDay(habits, today)
	span.SetAttributes(attribute.Int("habit_count", len(habits)))
	return habits
}

// loadRaw reads the habit list without day reconciliation. Mutations that
// interpret completion state reconcile the result explicitly before use.
func (r *HabitRepository) loadRaw(ctx context.Context) []engine.Habit {
	raw, err := r.store.Get(store.KeyHabits)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		r.errlog.Report("habits.load", "read habit list failed", err)
		return nil
	}
	var habits []engine.Habit
	if err := json.Unmarshal(raw, &habits); err != nil {
		r.errlog.Report("habits.load", "habit list corrupt, starting empty", err)
		return nil
	}
	return habits
}

// Save persists the full habit list. A write failure is reported and
// returned; the caller surfaces it as a transient notification without
// rolling back in-memory state.
func (r *HabitRepository) Save(ctx context.Context, habits []engine.Habit) error {
	_, span := tracer.Start(ctx, "habits.save")
	defer span.End()
	span.SetAttributes(attribute.Int("habit_count", len(habits)))

	raw, err := json.Marshal(habits)
	if err != nil {
		span.SetStatus(codes.Error, "marshal failed")
		return fmt.Errorf("marshal habits: %w", err)
	}
	if err := r.store.Set(store.KeyHabits, raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		r.errlog.Report("habits.save", "persist habit list failed", err)
		return err
	}
	return nil
}

// Add creates a habit with a fresh id, zero streak, and empty history,
// appends it to the list, and persists. Name validation (non-empty) happens
// at the CLI boundary, not here.
func (r *HabitRepository) Add(ctx context.Context, name, icon string) (engine.Habit, error) {
	ctx, span := tracer.Start(ctx, "habits.add")
	defer span.End()

	habit := engine.Habit{
		ID:      r.newID(),
		Name:    name,
		Icon:    icon,
		History: make(map[string]bool),
	}

	habits := append(r.loadRaw(ctx), habit)
	if err := r.Save(ctx, habits); err != nil {
		return habit, err
	}
	r.logger.Info("habit added", "habit_id", habit.ID, "name", name)
	return habit, nil
}

// Delete removes the habit with the given id, if present, and persists the
// remaining list. Deleting an unknown id is a no-op, not an error.
func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "habits.delete")
	defer span.End()
	span.SetAttributes(attribute.String("habit_id", id))

	habits := r.loadRaw(ctx)
	kept := habits[:0:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return nil
	}
	if err := r.Save(ctx, kept); err != nil {
		return err
	}
	r.logger.Info("habit deleted", "habit_id", id)
	return nil
}

// ToggleHabit flips a habit's completion for today and applies the matching
// score event: streak engine first, score ledger second, then both results
// are persisted. Habit list and score ledger persist independently.
//
// The list is reconciled against today before the toggle, so a completion
// persisted on an earlier day reads as not-completed and the toggle marks
// the habit done rather than negating stale state. The reconciled list is
// what gets persisted.
//
// The computed habit and score event are returned even when persistence
// fails, so the UI can show the new state alongside the write warning.
//
// Preconditions checked here: today must be a valid calendar day and id
// must name an existing habit. Either failure rejects before mutation.
func (t *Tracker) ToggleHabit(ctx context.Context, id, today string) (engine.Habit, engine.ScoreEvent, error) {
	ctx, span := tracer.Start(ctx, "habits.toggle")
	defer span.End()
	span.SetAttributes(
		attribute.String("habit_id", id),
		attribute.String("day", today),
	)

	if !engine.ValidDay(today) {
		span.SetStatus(codes.Error, "invalid day")
		return engine.Habit{}, engine.ScoreEvent{}, fmt.Errorf("%w: %q", ErrInvalidDay, today)
	}

	habits := engine.ReconcileDay(t.Habits.loadRaw(ctx), today)
	idx := -1
	for i, h := range habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		span.SetStatus(codes.Error, "habit not found")
		return engine.Habit{}, engine.ScoreEvent{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	toggled := engine.ToggleCompletion(habits[idx], today)
	habits[idx] = toggled

	ledger := t.Scores.Load(ctx)
	ledger, event := engine.ApplyCompletionEvent(
		ledger, toggled.ID, toggled.CompletedToday, toggled.Streak, today, t.Scores.now())

	var writeErr error
	if err := t.Habits.Save(ctx, habits); err != nil {
		writeErr = err
	}
	if err := t.Scores.Save(ctx, ledger); err != nil {
		writeErr = errors.Join(writeErr, err)
	}

	t.Habits.logger.Info("habit toggled",
		"habit_id", toggled.ID,
		"completed", toggled.CompletedToday,
		"streak", toggled.Streak,
		"earned", event.Earned,
	)
	return toggled, event, writeErr
}
