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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/storage/badger"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

const testToday = "2025-03-10"

var testNow = time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, store.Store) {
	t.Helper()
	db, err := badger.OpenInMemory()
	require.NoError(t, err)
	s := store.NewBadgerStore(db)
	t.Cleanup(func() { _ = s.Close() })

	tr := NewTracker(s, nil)
	tr.Scores.now = func() time.Time { return testNow }
	tr.Errors.now = func() time.Time { return testNow }
	return tr, s
}

// faultStore fails selected operations, for exercising the degrade paths.
type faultStore struct {
	inner   storeAPI
	failGet bool
	failSet bool
}

var errStoreDown = errors.New("store unavailable")

func (f *faultStore) Get(key string) ([]byte, error) {
	if f.failGet {
		return nil, errStoreDown
	}
	return f.inner.Get(key)
}

func (f *faultStore) Set(key string, value []byte) error {
	if f.failSet {
		return errStoreDown
	}
	return f.inner.Set(key, value)
}

func (f *faultStore) Remove(key string) error { return f.inner.Remove(key) }

// -----------------------------------------------------------------------------
// Habit Repository
// -----------------------------------------------------------------------------

func TestHabitRepository_AddAndLoad(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	habit, err := tr.Habits.Add(ctx, "Read", "book")
	require.NoError(t, err)
	assert.NotEmpty(t, habit.ID)
	assert.Zero(t, habit.Streak)
	assert.False(t, habit.CompletedToday)
	assert.Empty(t, habit.History)

	habits := tr.Habits.Load(ctx, testToday)
	require.Len(t, habits, 1)
	assert.Equal(t, habit.ID, habits[0].ID)
	assert.Equal(t, "Read", habits[0].Name)
}

func TestHabitRepository_DeleteIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	habit, err := tr.Habits.Add(ctx, "Read", "book")
	require.NoError(t, err)

	require.NoError(t, tr.Habits.Delete(ctx, habit.ID))
	assert.Empty(t, tr.Habits.Load(ctx, testToday))

	// Unknown id is a no-op, not an error.
	assert.NoError(t, tr.Habits.Delete(ctx, habit.ID))
	assert.NoError(t, tr.Habits.Delete(ctx, "never-existed"))
}

// TestHabitRepository_LoadReconcilesDay verifies the day rollover on load:
// a habit completed on a previous day reads as not completed today, with
// history and streak untouched and nothing written back.
func TestHabitRepository_LoadReconcilesDay(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()

	yesterday := engine.Yesterday(testToday)
	stale := engine.Habit{
		ID:             "h1",
		Name:           "Read",
		Streak:         3,
		CompletedToday: true,
		History:        map[string]bool{yesterday: true},
	}
	require.NoError(t, tr.Habits.Save(ctx, []engine.Habit{stale}))

	habits := tr.Habits.Load(ctx, testToday)
	require.Len(t, habits, 1)
	assert.False(t, habits[0].CompletedToday)
	assert.Equal(t, 3, habits[0].Streak)
	assert.Len(t, habits[0].History, 1)

	// The persisted value still carries the stale flag; reconciliation is
	// load-time only.
	raw, err := s.Get(store.KeyHabits)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"completedToday":true`)
}

// TestHabitRepository_CorruptListDegrades verifies a corrupt habits value
// reads as an empty list and lands in the error log.
func TestHabitRepository_CorruptListDegrades(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, s.Set(store.KeyHabits, []byte("{not json")))

	assert.Empty(t, tr.Habits.Load(ctx, testToday))

	entries := tr.Errors.List()
	require.NotEmpty(t, entries)
	assert.Equal(t, "habits.load", entries[0].Component)
}

// TestHabitRepository_UnreachableStoreDegrades verifies a read failure
// yields an empty list rather than an error.
func TestHabitRepository_UnreachableStoreDegrades(t *testing.T) {
	_, s := newTestTracker(t)
	broken := NewTracker(&faultStore{inner: s, failGet: true}, nil)

	assert.Empty(t, broken.Habits.Load(context.Background(), testToday))
}

// -----------------------------------------------------------------------------
// Toggle Orchestration
// -----------------------------------------------------------------------------

func TestTracker_ToggleHabit(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	habit, err := tr.Habits.Add(ctx, "Read", "book")
	require.NoError(t, err)

	toggled, event, err := tr.ToggleHabit(ctx, habit.ID, testToday)
	require.NoError(t, err)
	assert.True(t, toggled.CompletedToday)
	assert.Equal(t, 1, toggled.Streak)
	assert.Equal(t, 10, event.Earned)

	ledger := tr.Scores.Load(ctx)
	assert.Equal(t, 10, ledger.TotalScore)
	assert.Equal(t, 10, ledger.HabitScores[habit.ID].TotalScore)

	// Toggle back: -10, clamped ledger stays consistent.
	reverted, event, err := tr.ToggleHabit(ctx, habit.ID, testToday)
	require.NoError(t, err)
	assert.False(t, reverted.CompletedToday)
	assert.Zero(t, reverted.Streak)
	assert.Equal(t, -10, event.Earned)
	assert.Equal(t, 0, tr.Scores.Load(ctx).TotalScore)
}

// TestTracker_ToggleHabit_SevenDayBonus verifies the streak bonus flows
// through the full toggle path.
func TestTracker_ToggleHabit_SevenDayBonus(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	history := make(map[string]bool)
	for i := 1; i <= 6; i++ {
		history[engine.AddDays(testToday, -i)] = true
	}
	habit := engine.Habit{ID: "h1", Name: "Run", Streak: 6, History: history}
	require.NoError(t, tr.Habits.Save(ctx, []engine.Habit{habit}))

	toggled, event, err := tr.ToggleHabit(ctx, "h1", testToday)
	require.NoError(t, err)
	assert.Equal(t, 7, toggled.Streak)
	assert.Equal(t, 60, event.Earned)
	assert.True(t, event.BonusPaid)

	// Un-complete and re-complete on the same day: bonus not paid twice.
	_, _, err = tr.ToggleHabit(ctx, "h1", testToday)
	require.NoError(t, err)
	_, second, err := tr.ToggleHabit(ctx, "h1", testToday)
	require.NoError(t, err)
	assert.Equal(t, 10, second.Earned)
	assert.False(t, second.BonusPaid)
	assert.Equal(t, 60, tr.Scores.Load(ctx).TotalScore)
}

// TestTracker_ToggleHabit_NewDayCompletes verifies the first toggle of a new
// calendar day marks the habit done: the stale completedToday persisted on an
// earlier day is reconciled away before the streak engine runs, so the toggle
// extends the streak instead of negating yesterday's completion.
func TestTracker_ToggleHabit_NewDayCompletes(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	yesterday := engine.Yesterday(testToday)
	stale := engine.Habit{
		ID:             "h1",
		Name:           "Read",
		Streak:         1,
		CompletedToday: true,
		History:        map[string]bool{yesterday: true},
	}
	require.NoError(t, tr.Habits.Save(ctx, []engine.Habit{stale}))

	toggled, event, err := tr.ToggleHabit(ctx, "h1", testToday)
	require.NoError(t, err)
	assert.True(t, toggled.CompletedToday)
	assert.True(t, toggled.History[testToday])
	assert.Equal(t, 2, toggled.Streak, "yesterday's completion extends the streak")
	assert.Equal(t, 10, event.Earned)

	// The persisted list is the reconciled, toggled one.
	habits := tr.Habits.Load(ctx, testToday)
	require.Len(t, habits, 1)
	assert.True(t, habits[0].CompletedToday)
	assert.Equal(t, 2, habits[0].Streak)
	assert.Equal(t, 10, tr.Scores.Load(ctx).TotalScore)
}

func TestTracker_ToggleHabit_Preconditions(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, _, err := tr.ToggleHabit(ctx, "whatever", "03/10/2025")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, _, err = tr.ToggleHabit(ctx, "no-such-habit", testToday)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

// TestTracker_ToggleHabit_WriteFailureKeepsState verifies a failing write
// still returns the computed habit and event so the UI can report both the
// new state and the warning.
func TestTracker_ToggleHabit_WriteFailureKeepsState(t *testing.T) {
	_, s := newTestTracker(t)

	healthy := NewTracker(s, nil)
	habit, err := healthy.Habits.Add(context.Background(), "Read", "book")
	require.NoError(t, err)

	broken := NewTracker(&faultStore{inner: s, failSet: true}, nil)
	toggled, event, err := broken.ToggleHabit(context.Background(), habit.ID, testToday)

	assert.ErrorIs(t, err, errStoreDown)
	assert.True(t, toggled.CompletedToday, "computed state survives the write failure")
	assert.Equal(t, 10, event.Earned)
}

// -----------------------------------------------------------------------------
// Score, Settings, Task Stores
// -----------------------------------------------------------------------------

func TestScoreStore_DegradesToZero(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()

	ledger := tr.Scores.Load(ctx)
	assert.Zero(t, ledger.TotalScore)
	assert.NotNil(t, ledger.HabitScores)

	require.NoError(t, s.Set(store.KeyScores, []byte("corrupt")))
	ledger = tr.Scores.Load(ctx)
	assert.Zero(t, ledger.TotalScore)
}

func TestSettingsStore(t *testing.T) {
	tr, s := newTestTracker(t)

	assert.Equal(t, engine.ThemeLight, tr.Settings.Load().Theme, "default when unset")

	require.NoError(t, tr.Settings.Save(engine.Settings{Theme: engine.ThemeDark}))
	assert.Equal(t, engine.ThemeDark, tr.Settings.Load().Theme)

	require.NoError(t, s.Set(store.KeySettings, []byte(`{"theme":"sepia"}`)))
	assert.Equal(t, engine.ThemeLight, tr.Settings.Load().Theme, "unknown theme falls back")
}

func TestTaskStore(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.Empty(t, tr.Tasks.Load())

	require.NoError(t, tr.Tasks.SeedSample())
	tasks := tr.Tasks.Load()
	require.Len(t, tasks, 5)
	assert.Equal(t, "daily workout", tasks[0].Name)

	require.NoError(t, tr.Tasks.Clear())
	assert.Empty(t, tr.Tasks.Load())
}

// -----------------------------------------------------------------------------
// Error Log
// -----------------------------------------------------------------------------

func TestErrorLog_AppendListClear(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.Errors.Report("test.component", "first failure", errors.New("boom"))
	tr.Errors.Report("test.component", "second failure", nil)

	entries := tr.Errors.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "first failure", entries[0].Message)
	assert.Equal(t, "boom", entries[0].Stack)
	assert.Equal(t, testNow, entries[0].Timestamp)
	assert.Equal(t, "second failure", entries[1].Message)

	require.NoError(t, tr.Errors.Clear())
	assert.Empty(t, tr.Errors.List())
}

// TestErrorLog_StoreFailureDoesNotPanic verifies the sink swallows its own
// persistence failures.
func TestErrorLog_StoreFailureDoesNotPanic(t *testing.T) {
	_, s := newTestTracker(t)
	broken := NewTracker(&faultStore{inner: s, failGet: true, failSet: true}, nil)

	assert.NotPanics(t, func() {
		broken.Errors.Report("test", "unreachable store", errStoreDown)
	})
	assert.Empty(t, broken.Errors.List())
}
