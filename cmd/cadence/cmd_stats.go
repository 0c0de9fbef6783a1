// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/cadence/pkg/ux"
	"github.com/AleutianAI/cadence/services/tracker/engine"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var historyDays int // Trailing window for the history command

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

var statsCmd = &cobra.Command{
	Use:   "stats [habit-id]",
	Short: "Show the weekly completion chart, or one habit's statistics",
	Long: `Without arguments, shows how many habits were completed on each of the
last seven days. With a habit id, shows that habit's recorded days,
completions, completion rate, and current streak.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStatsCommand,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show total score and highlight habits",
	Run:   runAchievementsCommand,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Summarize all habits over a trailing window",
	Run:   runHistoryCommand,
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 30, "trailing window in days")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(historyCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runStatsCommand(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	habits := tracker.Habits.Load(ctx, today())

	if len(args) == 1 {
		runHabitStats(habits, args[0])
		return
	}

	stats := engine.ComputeWeeklyStats(habits, today())

	ux.Title("Last 7 days")
	for i, label := range stats.DateLabels {
		count := stats.DailyCompletions[i]
		bar := ux.ProgressBar(count, len(habits), 20)
		if ux.GetPersonality().Level == ux.PersonalityMachine {
			fmt.Printf("%s\t%d\n", label, count)
			continue
		}
		fmt.Printf("%5s  %s  %d\n", label, bar, count)
	}
}

func runHabitStats(habits []engine.Habit, id string) {
	for _, h := range habits {
		if h.ID != id {
			continue
		}
		stats := engine.ComputeHabitStats(h)
		ux.Title(h.Name)
		ux.Info(fmt.Sprintf("recorded days:   %d", stats.TotalDays))
		ux.Info(fmt.Sprintf("completed days:  %d", stats.CompletedDays))
		ux.Info(fmt.Sprintf("completion rate: %.0f%%", stats.CompletionRate))
		ux.Info(fmt.Sprintf("current streak:  %d", stats.CurrentStreak))
		return
	}
	fail(fmt.Sprintf("no habit with id %s", id))
}

func runAchievementsCommand(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	habits := tracker.Habits.Load(ctx, today())
	ledger := tracker.Scores.Load(ctx)

	summary := engine.ComputeAchievements(habits, ledger)

	ux.Title("Achievements")
	fmt.Printf("%s %s\n", ux.Styles.Bold.Render("total score:"), ux.Styles.Highlight.Render(fmt.Sprintf("%d", summary.TotalScore)))

	if summary.MostCompleted != nil {
		ux.Info(fmt.Sprintf("most completed: %s %s (%d days)",
			summary.MostCompleted.Icon, summary.MostCompleted.Name, summary.MostCompleted.Completions))
	} else {
		ux.Muted("no completions recorded yet")
	}
	if summary.LongestStreak != nil {
		ux.Info(fmt.Sprintf("longest streak: %s %s (%d days)",
			summary.LongestStreak.Icon, summary.LongestStreak.Name, summary.LongestStreak.Streak))
	} else {
		ux.Muted("no active streaks")
	}
}

func runHistoryCommand(cmd *cobra.Command, args []string) {
	if historyDays <= 0 {
		fail("--days must be positive")
	}
	ctx := context.Background()
	habits := tracker.Habits.Load(ctx, today())

	stats := engine.ComputeHistoryStats(habits, today(), historyDays)

	ux.Title(fmt.Sprintf("Last %d days", historyDays))
	ux.Info(fmt.Sprintf("habits tracked:    %d", stats.TotalHabits))
	ux.Info(fmt.Sprintf("recorded entries:  %d", stats.RecordedEntries))
	ux.Info(fmt.Sprintf("completions:       %d", stats.TotalCompletions))
	ux.Info(fmt.Sprintf("overall rate:      %d%%", stats.OverallRate))

	if len(habits) > 0 {
		fmt.Println()
		renderHistoryMatrix(habits)
	}
}

// renderHistoryMatrix prints one row per habit over the trailing week:
// done, missed, or unrecorded per day, oldest first.
func renderHistoryMatrix(habits []engine.Habit) {
	machine := ux.GetPersonality().Level == ux.PersonalityMachine
	for _, h := range habits {
		var row strings.Builder
		for offset := engine.WeekDays - 1; offset >= 0; offset-- {
			day := engine.AddDays(today(), -offset)
			done, recorded := h.History[day]
			switch {
			case !recorded:
				row.WriteString(ux.Styles.Muted.Render("·"))
			case done:
				row.WriteString(ux.Styles.StatusDone.String())
			default:
				row.WriteString(ux.Styles.Error.Render("✗"))
			}
			row.WriteString(" ")
		}
		if machine {
			fmt.Printf("%s\t%s\n", h.ID, strings.TrimSpace(row.String()))
			continue
		}
		fmt.Printf("%s %s\n", row.String(), h.Name)
	}
}
