// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/cadence/pkg/ux"
	"github.com/AleutianAI/cadence/services/tracker/repo"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	addIcon   string // Glyph shown next to the habit name
	toggleDay string // Day override for the toggle command
)

// =============================================================================
// COMMAND DEFINITIONS
// =============================================================================

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new habit to track",
	Long: `Adds a habit with a fresh id, zero streak, and empty history.

Examples:
  cadence add "Morning run"
  cadence add "Drink water" --icon 💧`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAddCommand,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's completion and current streaks",
	Run:   runListCommand,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [habit-id]",
	Short: "Toggle a habit's completion for today",
	Long: `Flips a habit between completed and not completed for today.

Completing extends the streak and earns points; a seven-day streak pays a
bonus. Toggling off recomputes the streak from history and walks the
points back.`,
	Args: cobra.ExactArgs(1),
	Run:  runToggleCommand,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [habit-id]",
	Short: "Delete a habit",
	Long:  `Removes a habit from the list. Its earned points stay on the ledger.`,
	Args:  cobra.ExactArgs(1),
	Run:   runDeleteCommand,
}

func init() {
	addCmd.Flags().StringVar(&addIcon, "icon", "📝", "glyph shown next to the habit name")
	toggleCmd.Flags().StringVar(&toggleDay, "day", "", "day to toggle (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(deleteCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runAddCommand(cmd *cobra.Command, args []string) {
	req := AddHabitRequest{
		Name: strings.TrimSpace(strings.Join(args, " ")),
		Icon: addIcon,
	}
	if err := req.Validate(); err != nil {
		fail(fmt.Sprintf("invalid habit: %v", err))
	}

	habit, err := tracker.Habits.Add(context.Background(), req.Name, req.Icon)
	if err != nil {
		fail(fmt.Sprintf("save habit: %v", err))
	}
	ux.Success(fmt.Sprintf("added %q (%s)", habit.Name, habit.ID))
}

func runListCommand(cmd *cobra.Command, args []string) {
	habits := tracker.Habits.Load(context.Background(), today())
	if len(habits) == 0 {
		ux.Muted("no habits yet - try: cadence add \"Morning run\"")
		if ux.GetPersonality().Level == ux.PersonalityMachine {
			fmt.Println("SUMMARY: completed=0 pending=0 total=0")
		}
		return
	}

	ux.Title("Habits")
	completed := 0
	for _, h := range habits {
		marker := ux.Styles.StatusPending.String()
		if h.CompletedToday {
			marker = ux.Styles.StatusDone.String()
			completed++
		}
		icon := h.Icon
		if icon == "" {
			icon = string(ux.IconBullet)
		}
		line := fmt.Sprintf("%s %s %s  %s", marker, icon, h.Name, ux.Streak(h.Streak))
		if ux.GetPersonality().Level == ux.PersonalityMachine {
			line = fmt.Sprintf("%s\t%v\t%d\t%s", h.ID, h.CompletedToday, h.Streak, h.Name)
		}
		fmt.Println(line)
		if ux.GetPersonality().Level != ux.PersonalityMachine {
			ux.Muted("  " + h.ID)
		}
	}
	ux.Summary(completed, len(habits)-completed, len(habits))
}

func runToggleCommand(cmd *cobra.Command, args []string) {
	day := toggleDay
	if day == "" {
		day = today()
	}
	req := ToggleRequest{HabitID: args[0], Day: day}
	if err := req.Validate(); err != nil {
		fail(fmt.Sprintf("invalid toggle: %v", err))
	}

	habit, event, err := tracker.ToggleHabit(context.Background(), req.HabitID, req.Day)
	switch {
	case errors.Is(err, repo.ErrHabitNotFound):
		fail(fmt.Sprintf("no habit with id %s", req.HabitID))
	case errors.Is(err, repo.ErrInvalidDay):
		fail(fmt.Sprintf("invalid day %q", req.Day))
	case err != nil:
		// State was computed; the write failed. Show both.
		ux.Warning(fmt.Sprintf("changes may not be saved: %v", err))
	}

	if habit.CompletedToday {
		ux.Success(event.Message)
		if event.BonusPaid {
			fmt.Printf("%s %s\n", ux.IconTrophy.Render(), ux.Styles.Streak.Render("7-day streak bonus!"))
		}
		fmt.Printf("  %s\n", ux.Streak(habit.Streak))
	} else {
		ux.Info(event.Message)
	}
}

func runDeleteCommand(cmd *cobra.Command, args []string) {
	id := args[0]
	if err := tracker.Habits.Delete(context.Background(), id); err != nil {
		fail(fmt.Sprintf("delete habit: %v", err))
	}
	ux.Success(fmt.Sprintf("deleted %s", id))
}
