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
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// TaskStore persists the generic task list under "tasks". Tasks are an
// independent monitoring surface; they never interact with habits.
type TaskStore struct {
	store  storeAPI
	logger *slog.Logger
	errlog *ErrorLog
}

// Load returns the task list, degrading to empty on any read failure.
func (s *TaskStore) Load() []engine.GenericTask {
	raw, err := s.store.Get(store.KeyTasks)
	if err != nil {
		return nil
	}
	var tasks []engine.GenericTask
	if err := json.Unmarshal(raw, &tasks); err != nil {
		s.errlog.Report("tasks.load", "task list corrupt, starting empty", err)
		return nil
	}
	return tasks
}

// Save persists the full task list.
func (s *TaskStore) Save(tasks []engine.GenericTask) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return s.store.Set(store.KeyTasks, raw)
}

// Clear removes all tasks in bulk.
func (s *TaskStore) Clear() error {
	return s.store.Remove(store.KeyTasks)
}

// SeedSample replaces the task list with demo data for trying out the
// health view.
func (s *TaskStore) SeedSample() error {
	sample := []engine.GenericTask{
		{ID: "1", Name: "daily workout", Success: 15, Fail: 3},
		{ID: "2", Name: "language practice", Success: 8, Fail: 5},
		{ID: "3", Name: "reading", Success: 2, Fail: 1},
		{ID: "4", Name: "early wake-up", Success: 20, Fail: 1},
		{ID: "5", Name: "journaling", Success: 5, Fail: 7},
	}
	return s.Save(sample)
}
