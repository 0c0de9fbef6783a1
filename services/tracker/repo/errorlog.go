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
	"log/slog"
	"time"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// ErrorLog is the append-only error sink persisted under "error_logs".
//
// The log is itself boundary-guarded: if appending to the store fails, the
// entry still reaches slog and the failure is swallowed. A broken store must
// never turn error reporting into a crash loop.
type ErrorLog struct {
	store  storeAPI
	logger *slog.Logger
	now    func() time.Time
}

// Report appends an entry built from component, message, and err, and
// mirrors it to the structured logger.
func (l *ErrorLog) Report(component, message string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	l.logger.Error(message, "component", component, "error", detail)

	entry := engine.ErrorEntry{
		Timestamp: l.now(),
		Message:   message,
		Stack:     detail,
		Component: component,
	}

	entries := l.List()
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		l.logger.Error("marshal error log", "error", err.Error())
		return
	}
	if err := l.store.Set(store.KeyErrorLogs, raw); err != nil {
		l.logger.Error("persist error log", "error", err.Error())
	}
}

// List returns all recorded entries, oldest first. A missing or corrupt log
// reads as empty.
func (l *ErrorLog) List() []engine.ErrorEntry {
	raw, err := l.store.Get(store.KeyErrorLogs)
	if err != nil {
		return nil
	}
	var entries []engine.ErrorEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		l.logger.Warn("error log corrupt, starting fresh", "error", err.Error())
		return nil
	}
	return entries
}

// Clear removes the whole log.
func (l *ErrorLog) Clear() error {
	return l.store.Remove(store.KeyErrorLogs)
}
