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
	"math"
)

// -----------------------------------------------------------------------------
// Weekly Stats
// -----------------------------------------------------------------------------

// WeekDays is the length of the weekly completion series.
const WeekDays = 7

// WeeklyStats is the 7-day completion series ending today, oldest first.
type WeeklyStats struct {
	// DateLabels holds short M/D labels for each day.
	DateLabels []string `json:"dateLabels"`

	// DailyCompletions counts habits with an explicit true record per day.
	DailyCompletions []int `json:"dailyCompletions"`
}

// ComputeWeeklyStats counts, for each of the 7 calendar days ending at today
// (inclusive), how many habits recorded a completion on that day. Zero
// habits yields an all-zero series of length 7.
func ComputeWeeklyStats(habits []Habit, today string) WeeklyStats {
	stats := WeeklyStats{
		DateLabels:       make([]string, 0, WeekDays),
		DailyCompletions: make([]int, 0, WeekDays),
	}
	for offset := WeekDays - 1; offset >= 0; offset-- {
		day := AddDays(today, -offset)
		stats.DateLabels = append(stats.DateLabels, DayLabel(day))

		count := 0
		for _, h := range habits {
			if h.History[day] {
				count++
			}
		}
		stats.DailyCompletions = append(stats.DailyCompletions, count)
	}
	return stats
}

// -----------------------------------------------------------------------------
// Achievements
// -----------------------------------------------------------------------------

// CompletionHighlight names the habit with the most completed days.
type CompletionHighlight struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Completions int    `json:"completions"`
}

// StreakHighlight names the habit with the longest current streak.
type StreakHighlight struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Streak int    `json:"streak"`
}

// AchievementSummary is the read-only achievement view. Either highlight is
// nil when no habit qualifies (zero completions or zero streak never win).
type AchievementSummary struct {
	TotalScore    int                  `json:"totalScore"`
	MostCompleted *CompletionHighlight `json:"mostCompletedHabit,omitempty"`
	LongestStreak *StreakHighlight     `json:"longestStreakHabit,omitempty"`
}

// ComputeAchievements extracts highlight habits from the list. Comparisons
// are strictly greater, so ties keep the first habit encountered in input
// order.
func ComputeAchievements(habits []Habit, ledger ScoreLedger) AchievementSummary {
	summary := AchievementSummary{TotalScore: ledger.TotalScore}

	maxCompletions := 0
	for _, h := range habits {
		completions := CompletedDays(h)
		if completions > maxCompletions {
			maxCompletions = completions
			summary.MostCompleted = &CompletionHighlight{
				Name:        h.Name,
				Icon:        h.Icon,
				Completions: completions,
			}
		}
	}

	maxStreak := 0
	for _, h := range habits {
		if h.Streak > maxStreak {
			maxStreak = h.Streak
			summary.LongestStreak = &StreakHighlight{
				Name:   h.Name,
				Icon:   h.Icon,
				Streak: h.Streak,
			}
		}
	}
	return summary
}

// CompletedDays counts explicit true entries in a habit's history.
func CompletedDays(h Habit) int {
	count := 0
	for _, done := range h.History {
		if done {
			count++
		}
	}
	return count
}

// -----------------------------------------------------------------------------
// Per-Habit & History Stats
// -----------------------------------------------------------------------------

// HabitStats is the per-habit history summary shown on the habit card.
type HabitStats struct {
	TotalDays      int     `json:"totalDays"`
	CompletedDays  int     `json:"completedDays"`
	CompletionRate float64 `json:"completionRate"` // percent, 0 when no records
	CurrentStreak  int     `json:"currentStreak"`
}

// ComputeHabitStats summarizes one habit's recorded history.
func ComputeHabitStats(h Habit) HabitStats {
	stats := HabitStats{
		TotalDays:     len(h.History),
		CompletedDays: CompletedDays(h),
		CurrentStreak: h.Streak,
	}
	if stats.TotalDays > 0 {
		stats.CompletionRate = float64(stats.CompletedDays) / float64(stats.TotalDays) * 100
	}
	return stats
}

// HistoryStats summarizes all habits over a trailing window of days.
type HistoryStats struct {
	TotalHabits      int `json:"totalHabits"`
	RecordedEntries  int `json:"recordedEntries"`
	TotalCompletions int `json:"totalCompletions"`
	OverallRate      int `json:"overallRate"` // percent of recorded entries completed
}

// ComputeHistoryStats aggregates recorded entries and completions across the
// window days ending at today, inclusive.
func ComputeHistoryStats(habits []Habit, today string, window int) HistoryStats {
	stats := HistoryStats{TotalHabits: len(habits)}
	for offset := window - 1; offset >= 0; offset-- {
		day := AddDays(today, -offset)
		for _, h := range habits {
			done, recorded := h.History[day]
			if !recorded {
				continue
			}
			stats.RecordedEntries++
			if done {
				stats.TotalCompletions++
			}
		}
	}
	if stats.RecordedEntries > 0 {
		rate := float64(stats.TotalCompletions) / float64(stats.RecordedEntries) * 100
		stats.OverallRate = int(math.Round(rate))
	}
	return stats
}

// -----------------------------------------------------------------------------
// Task Health
// -----------------------------------------------------------------------------

// ClassifyTaskHealth derives a health classification for each task.
//
// Classification is best-effort per item: a malformed record (negative
// success or fail count) is skipped and reported in the returned error
// slice rather than aborting the batch. Tasks with fewer than
// MinHealthSamples total runs are classified StatusInsufficientData with
// health 0 regardless of ratio.
func ClassifyTaskHealth(tasks []GenericTask) ([]TaskHealth, []error) {
	results := make([]TaskHealth, 0, len(tasks))
	var errs []error
	for _, task := range tasks {
		if task.Success < 0 || task.Fail < 0 {
			errs = append(errs, fmt.Errorf("task %q: negative success/fail counts (%d/%d)",
				task.Name, task.Success, task.Fail))
			continue
		}

		th := TaskHealth{
			ID:      task.ID,
			Name:    task.Name,
			Success: task.Success,
			Fail:    task.Fail,
			Status:  StatusInsufficientData,
		}
		total := task.Success + task.Fail
		if total >= MinHealthSamples {
			th.Health = int(math.Round(float64(task.Success) / float64(total) * 100))
			switch {
			case th.Health < 60:
				th.Status = StatusUnhealthy
			case th.Health < 90:
				th.Status = StatusFair
			default:
				th.Status = StatusHealthy
			}
		}
		results = append(results, th)
	}
	return results, errs
}
