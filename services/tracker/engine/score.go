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

// -----------------------------------------------------------------------------
// Scoring Rules
// -----------------------------------------------------------------------------

const (
	// CompletionPoints is the flat award for completing a habit.
	CompletionPoints = 10

	// StreakBonusPoints is the extra award paid when a streak reaches
	// exactly StreakBonusLength.
	StreakBonusPoints = 50

	// StreakBonusLength is the streak length that triggers the bonus.
	// The bonus fires only at exactly this length, not at multiples.
	StreakBonusLength = 7
)

// ScoreEvent is the outcome of one completion or un-completion, returned
// for UI feedback alongside the updated ledger.
type ScoreEvent struct {
	// Earned is the signed point delta actually applied to the ledger
	// before clamping.
	Earned int

	// BonusPaid reports whether the 7-day streak bonus was part of Earned.
	BonusPaid bool

	// Message is a human-readable summary for transient notification.
	Message string
}

// ApplyCompletionEvent applies one completion event to the ledger and
// returns the updated ledger plus the event outcome. The input ledger is
// not modified; the caller persists the returned value.
//
// Rules:
//
//   - Completion awards CompletionPoints to both the habit's sub-score and
//     the global total.
//   - When newStreak equals StreakBonusLength exactly and the bonus has not
//     already been paid today, StreakBonusPoints are added and the payment
//     day recorded. The recompute path makes streak 7 reachable only once
//     per forward progression, so the LastRewardDay guard is a safety net
//     against same-day re-triggering, not the primary defense.
//   - Un-completion deducts CompletionPoints. Bonus points already paid are
//     intentionally not clawed back: a late-night mis-tap should not erase
//     a week of progress.
//   - Both the sub-score and the global total clamp at zero after the
//     event. The clamps are independent, which is the one place the
//     "global equals sum of per-habit" target can drift.
//
// Inputs:
//
//	ledger - Current score ledger. Passed by value; never mutated.
//	habitID - The habit the event belongs to.
//	isCompletion - True for done, false for un-done.
//	newStreak - The habit's streak after the toggle.
//	today - Current calendar day, for the once-per-day bonus guard.
//	now - Wall-clock timestamp recorded as LastUpdated.
//
// Outputs:
//
//	ScoreLedger - The updated ledger, ready to persist.
//	ScoreEvent - Signed delta, bonus flag, and feedback message.
func ApplyCompletionEvent(ledger ScoreLedger, habitID string, isCompletion bool, newStreak int, today string, now time.Time) (ScoreLedger, ScoreEvent) {
	next := ledger.Clone()
	if next.HabitScores == nil {
		next.HabitScores = make(map[string]HabitScore)
	}
	hs := next.HabitScores[habitID]

	var event ScoreEvent
	if isCompletion {
		event.Earned = CompletionPoints
		event.Message = fmt.Sprintf("habit completed: +%d points", CompletionPoints)
		if newStreak == StreakBonusLength && hs.LastRewardDay != today {
			event.Earned += StreakBonusPoints
			event.BonusPaid = true
			event.Message = fmt.Sprintf("%d-day streak: +%d points with +%d bonus",
				StreakBonusLength, CompletionPoints, StreakBonusPoints)
			hs.LastRewardDay = today
		}
	} else {
		event.Earned = -CompletionPoints
		event.Message = fmt.Sprintf("completion reverted: -%d points", CompletionPoints)
	}

	hs.TotalScore += event.Earned
	hs.ConsecutiveDays = newStreak
	next.TotalScore += event.Earned

	if hs.TotalScore < 0 {
		hs.TotalScore = 0
	}
	if next.TotalScore < 0 {
		next.TotalScore = 0
	}

	next.HabitScores[habitID] = hs
	next.LastUpdated = now
	return next, event
}
