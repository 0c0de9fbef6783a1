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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToday = "2025-03-10"

// historyFor builds a history map from day offsets relative to testToday.
// Offset 0 is today, -1 is yesterday, and so on.
func historyFor(entries map[int]bool) map[string]bool {
	history := make(map[string]bool, len(entries))
	for offset, done := range entries {
		history[AddDays(testToday, offset)] = done
	}
	return history
}

// TestToggleCompletion_Negates verifies each toggle flips CompletedToday and
// keeps History[today] in sync with it.
func TestToggleCompletion_Negates(t *testing.T) {
	h := Habit{ID: "h1", Name: "Read", History: map[string]bool{}}

	toggled := ToggleCompletion(h, testToday)
	assert.True(t, toggled.CompletedToday)
	assert.True(t, toggled.History[testToday])

	back := ToggleCompletion(toggled, testToday)
	assert.False(t, back.CompletedToday)
	done, recorded := back.History[testToday]
	assert.True(t, recorded, "today stays recorded after un-completion")
	assert.False(t, done)
}

// TestToggleCompletion_ExtendsContiguousRun verifies the monotonic
// contiguous-completion property: true for the last N days plus a toggle
// today yields streak N+1.
func TestToggleCompletion_ExtendsContiguousRun(t *testing.T) {
	h := Habit{
		ID:      "h1",
		Streak:  3,
		History: historyFor(map[int]bool{-1: true, -2: true, -3: true}),
	}

	toggled := ToggleCompletion(h, testToday)
	assert.Equal(t, 4, toggled.Streak)
}

// TestToggleCompletion_GapRestartsStreak verifies that a false or unrecorded
// yesterday restarts the streak at 1 regardless of older history or a stale
// positive stored streak.
func TestToggleCompletion_GapRestartsStreak(t *testing.T) {
	tests := []struct {
		name    string
		history map[int]bool
	}{
		{"yesterday unrecorded", map[int]bool{-3: true, -4: true}},
		{"yesterday explicitly false", map[int]bool{-1: false, -2: true, -3: true}},
		{"empty history", map[int]bool{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Habit{ID: "h1", Streak: 5, History: historyFor(tt.history)}
			toggled := ToggleCompletion(h, testToday)
			assert.Equal(t, 1, toggled.Streak)
		})
	}
}

// TestToggleCompletion_BackwardRecount verifies the un-completion recount:
// history {today: true, d-1: true, d-2: true, d-3: false} toggled today
// true->false yields streak 2.
func TestToggleCompletion_BackwardRecount(t *testing.T) {
	h := Habit{
		ID:             "h1",
		Streak:         3,
		CompletedToday: true,
		History:        historyFor(map[int]bool{0: true, -1: true, -2: true, -3: false}),
	}

	toggled := ToggleCompletion(h, testToday)
	assert.False(t, toggled.CompletedToday)
	assert.Equal(t, 2, toggled.Streak)
}

// TestToggleCompletion_RecountStopsAtGap verifies an unrecorded day
// terminates the backward walk exactly like an explicit false.
func TestToggleCompletion_RecountStopsAtGap(t *testing.T) {
	h := Habit{
		ID:             "h1",
		Streak:         5,
		CompletedToday: true,
		// d-2 absent: run ends after d-1 even though d-3 onward are true.
		History: historyFor(map[int]bool{0: true, -1: true, -3: true, -4: true}),
	}

	toggled := ToggleCompletion(h, testToday)
	assert.Equal(t, 1, toggled.Streak)
}

// TestToggleCompletion_RoundTrip verifies that with a clean contiguous
// history, toggling twice in succession restores completedToday and streak.
func TestToggleCompletion_RoundTrip(t *testing.T) {
	h := Habit{
		ID:      "h1",
		Streak:  2,
		History: historyFor(map[int]bool{-1: true, -2: true}),
	}

	once := ToggleCompletion(h, testToday)
	twice := ToggleCompletion(once, testToday)

	assert.Equal(t, h.CompletedToday, twice.CompletedToday)
	assert.Equal(t, h.Streak, twice.Streak)
	// History gains exactly the today entry, now false.
	assert.Len(t, twice.History, len(h.History)+1)
}

// TestToggleCompletion_DoesNotMutateInput verifies the engine operates on a
// clone; all cross-component data passes by value.
func TestToggleCompletion_DoesNotMutateInput(t *testing.T) {
	h := Habit{
		ID:      "h1",
		Streak:  1,
		History: historyFor(map[int]bool{-1: true}),
	}

	_ = ToggleCompletion(h, testToday)

	require.Len(t, h.History, 1)
	assert.False(t, h.CompletedToday)
	assert.Equal(t, 1, h.Streak)
	_, recorded := h.History[testToday]
	assert.False(t, recorded, "input history must not gain today's entry")
}

// TestReconcileDay verifies the load-time day rollover.
func TestReconcileDay(t *testing.T) {
	stale := Habit{
		ID:             "stale",
		Streak:         4,
		CompletedToday: true,
		History:        historyFor(map[int]bool{-1: true, -2: true}),
	}
	current := Habit{
		ID:             "current",
		Streak:         1,
		CompletedToday: true,
		History:        historyFor(map[int]bool{0: true}),
	}

	out := ReconcileDay([]Habit{stale, current}, testToday)
	require.Len(t, out, 2)

	assert.False(t, out[0].CompletedToday, "stale habit resets")
	assert.Equal(t, 4, out[0].Streak, "streak untouched by reconcile")
	assert.Len(t, out[0].History, 2, "history untouched by reconcile")

	assert.True(t, out[1].CompletedToday, "habit with a today record keeps its flag")
}

// TestReconcileDay_EmptyHistory verifies a never-toggled habit stays false.
func TestReconcileDay_EmptyHistory(t *testing.T) {
	h := Habit{ID: "new", History: map[string]bool{}}
	out := ReconcileDay([]Habit{h}, testToday)
	require.Len(t, out, 1)
	assert.False(t, out[0].CompletedToday)
}
