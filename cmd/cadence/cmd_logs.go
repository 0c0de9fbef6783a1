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
)

var logsClear bool

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recorded storage errors",
	Long: `Shows the append-only log of storage failures the tracker recovered
from: unreadable keys, corrupt values, failed writes.`,
	Run: runLogsCommand,
}

func init() {
	logsCmd.Flags().BoolVar(&logsClear, "clear", false, "remove all recorded errors")

	rootCmd.AddCommand(logsCmd)
}

func runLogsCommand(cmd *cobra.Command, args []string) {
	if logsClear {
		if err := tracker.Errors.Clear(); err != nil {
			fail(fmt.Sprintf("clear error log: %v", err))
		}
		ux.Success("error log cleared")
		return
	}

	entries := tracker.Errors.List()
	if len(entries) == 0 {
		ux.Muted("no errors recorded")
		return
	}

	ux.Title(fmt.Sprintf("Recorded errors (%d)", len(entries)))
	for _, e := range entries {
		if ux.GetPersonality().Level == ux.PersonalityMachine {
			fmt.Printf("%s\t%s\t%s\n", e.Timestamp.Format("2006-01-02T15:04:05"), e.Component, e.Message)
			continue
		}
		fmt.Printf("%s %s %s\n",
			ux.Styles.Muted.Render(e.Timestamp.Format("2006-01-02 15:04")),
			ux.Styles.Warning.Render(e.Component),
			e.Message,
		)
	}
}
