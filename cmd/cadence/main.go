// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/cadence/pkg/logging"
	"github.com/AleutianAI/cadence/pkg/ux"
	"github.com/AleutianAI/cadence/services/tracker/config"
	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/repo"
	"github.com/AleutianAI/cadence/services/tracker/storage/badger"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// =============================================================================
// GLOBAL STATE
// =============================================================================

var (
	cfg     config.Config
	logger  *logging.Logger
	kv      store.Store
	tracker *repo.Tracker

	// Persistent flags
	configPath  string
	dataDirFlag string
	personality string
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "A habit tracker for your terminal",
	Long: `Cadence tracks daily habits, streaks, and scores from the command line.

Toggle a habit once per day to extend its streak. Completions earn points,
seven-day streaks earn a bonus, and the stats commands summarize how the
week went.`,
	PersistentPreRun:  bootstrap,
	PersistentPostRun: teardown,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.cadence/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override data directory")
	rootCmd.PersistentFlags().StringVar(&personality, "personality", "", "output style: full, minimal, machine")
}

// bootstrap loads config, opens the store, and builds the tracker. Runs
// before every command; a failure here is fatal.
func bootstrap(cmd *cobra.Command, args []string) {
	ux.InitPersonality()

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	var err error
	cfg, err = config.Load(path)
	if err != nil {
		fatal(fmt.Sprintf("load config: %v", err))
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}

	// Flag beats config beats tty detection.
	if cfg.Quiet {
		ux.SetPersonalityLevel(ux.PersonalityMachine)
	}
	if personality != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personality))
	}

	logger = logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "cadence",
		Quiet:   true, // CLI output goes through ux, not the log stream
	})

	db, err := badger.OpenWithPath(cfg.ExpandedDataDir())
	if err != nil {
		fatal(fmt.Sprintf("open data store at %s: %v", cfg.ExpandedDataDir(), err))
	}
	kv = store.NewBadgerStore(db)
	tracker = repo.NewTracker(kv, logger.Slog())

	ux.SetTheme(string(tracker.Settings.Load().Theme))
}

// teardown releases the store and log file handles.
func teardown(cmd *cobra.Command, args []string) {
	if kv != nil {
		if err := kv.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
	}
	if logger != nil {
		_ = logger.Close()
	}
}

// today returns the current calendar day in local time.
func today() string {
	return engine.DayString(time.Now())
}

// fatal prints the error and exits. Used for failures no command can
// recover from.
func fatal(msg string) {
	ux.Error(msg)
	os.Exit(1)
}

// fail prints a command-level error and exits non-zero after teardown
// would have run. Cobra does not run PersistentPostRun on os.Exit, so
// close handles explicitly first.
func fail(msg string) {
	ux.Error(msg)
	teardown(nil, nil)
	os.Exit(1)
}
