// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/cadence/pkg/ux"
	"github.com/AleutianAI/cadence/services/tracker/engine"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	healthSeed  bool // Replace stored tasks with the sample set
	healthClear bool // Remove all stored tasks
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Classify generic task health from success/fail counts",
	Long: `Classifies each stored task by its success ratio.

Tasks with fewer than three recorded runs are reported as insufficient
data. Otherwise a task is healthy at 90 or above, fair at 60 to 89, and
unhealthy below 60.

Examples:
  cadence health           # Classify stored tasks
  cadence health --seed    # Load the sample task set first
  cadence health --clear   # Remove all stored tasks`,
	Run: runHealthCommand,
}

func init() {
	healthCmd.Flags().BoolVar(&healthSeed, "seed", false, "replace stored tasks with the sample set")
	healthCmd.Flags().BoolVar(&healthClear, "clear", false, "remove all stored tasks")

	rootCmd.AddCommand(healthCmd)
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runHealthCommand(cmd *cobra.Command, args []string) {
	if healthClear {
		if err := tracker.Tasks.Clear(); err != nil {
			fail(fmt.Sprintf("clear tasks: %v", err))
		}
		ux.Success("tasks cleared")
		return
	}
	if healthSeed {
		if err := tracker.Tasks.SeedSample(); err != nil {
			fail(fmt.Sprintf("seed tasks: %v", err))
		}
	}

	tasks := tracker.Tasks.Load()
	if len(tasks) == 0 {
		ux.Muted("no tasks recorded - try: cadence health --seed")
		return
	}

	results, errs := engine.ClassifyTaskHealth(tasks)
	for _, err := range errs {
		ux.Warning(err.Error())
	}

	ux.Title("Task health")
	for _, r := range results {
		style := ux.HealthStyle(string(r.Status))
		if ux.GetPersonality().Level == ux.PersonalityMachine {
			fmt.Printf("%s\t%d\t%s\t%d/%d\n", r.Name, r.Health, r.Status, r.Success, r.Fail)
			continue
		}
		fmt.Printf("%s %-24s %3d  %s\n",
			style.Render("●"),
			r.Name,
			r.Health,
			ux.Styles.Muted.Render(fmt.Sprintf("%d ok / %d failed", r.Success, r.Fail)),
		)
	}
}
