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

// ToggleCompletion flips a habit's completion state for today and returns
// the habit with its history and streak recomputed. The input habit is not
// modified.
//
// Description:
//
//	Each call negates CompletedToday and writes the new value into
//	History[today]. The streak then follows one of two paths:
//
//	Marking done: the streak extends the prior streak by one only when
//	yesterday is recorded as completed; any gap restarts the streak at 1,
//	even if the stored streak was still positive from a non-contiguous
//	past.
//
//	Un-marking: the stored streak can no longer be trusted, so the run is
//	recounted by walking backward from yesterday while History reads true.
//	An absent key terminates the walk exactly like an explicit false.
//	Today itself is excluded from the recount since it is now false.
//
// Inputs:
//
//	h - The habit to toggle. Passed by value; never mutated.
//	today - Current calendar day. Must be a valid YYYY-MM-DD string;
//	        validated at the boundary, not here.
//
// Outputs:
//
//	Habit - The habit with CompletedToday, History, and Streak updated.
func ToggleCompletion(h Habit, today string) Habit {
	next := h.Clone()
	completed := !h.CompletedToday
	next.History[today] = completed
	next.CompletedToday = completed

	if completed {
		if next.History[Yesterday(today)] {
			next.Streak = h.Streak + 1
		} else {
			next.Streak = 1
		}
		return next
	}

	next.Streak = recountStreak(next.History, today)
	return next
}

// recountStreak returns the length of the unbroken completed run ending
// the day before today. The walk is capped at the size of the history map:
// a contiguous run of true entries cannot be longer than the number of
// recorded days, so the cap never truncates a legitimate run but does
// guarantee termination.
func recountStreak(history map[string]bool, today string) int {
	streak := 0
	day := Yesterday(today)
	for i := 0; i < len(history); i++ {
		if !history[day] {
			break
		}
		streak++
		day = Yesterday(day)
	}
	return streak
}

// ReconcileDay returns habits with CompletedToday forced to false for every
// habit whose most recent history entry is not today. History and Streak are
// left untouched. Called on every load and before each toggle; this is the
// day-rollover mechanism, there is no background job.
func ReconcileDay(habits []Habit, today string) []Habit {
	out := make([]Habit, 0, len(habits))
	for _, h := range habits {
		if h.CompletedToday && latestDay(h.History) != today {
			h = h.Clone()
			h.CompletedToday = false
		}
		out = append(out, h)
	}
	return out
}

// latestDay returns the lexicographically greatest history key, which for
// YYYY-MM-DD keys is also the most recent day. Empty history returns "".
func latestDay(history map[string]bool) string {
	latest := ""
	for day := range history {
		if day > latest {
			latest = day
		}
	}
	return latest
}
