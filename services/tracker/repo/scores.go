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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/AleutianAI/cadence/services/tracker/engine"
	"github.com/AleutianAI/cadence/services/tracker/store"
)

// ScoreStore persists the single score ledger under "scores".
type ScoreStore struct {
	store  storeAPI
	logger *slog.Logger
	errlog *ErrorLog
	now    func() time.Time
}

// Load returns the persisted ledger, or a fresh zero ledger when the key is
// missing, unreachable, or corrupt.
func (s *ScoreStore) Load(ctx context.Context) engine.ScoreLedger {
	_, span := tracer.Start(ctx, "scores.load")
	defer span.End()

	raw, err := s.store.Get(store.KeyScores)
	if errors.Is(err, store.ErrNotFound) {
		return engine.NewScoreLedger(s.now())
	}
	if err != nil {
		s.errlog.Report("scores.load", "read score ledger failed", err)
		return engine.NewScoreLedger(s.now())
	}
	var ledger engine.ScoreLedger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		s.errlog.Report("scores.load", "score ledger corrupt, starting at zero", err)
		return engine.NewScoreLedger(s.now())
	}
	if ledger.HabitScores == nil {
		ledger.HabitScores = make(map[string]engine.HabitScore)
	}
	return ledger
}

// Save persists the ledger. Write failures are reported and returned.
func (s *ScoreStore) Save(ctx context.Context, ledger engine.ScoreLedger) error {
	_, span := tracer.Start(ctx, "scores.save")
	defer span.End()

	raw, err := json.Marshal(ledger)
	if err != nil {
		span.SetStatus(codes.Error, "marshal failed")
		return fmt.Errorf("marshal score ledger: %w", err)
	}
	if err := s.store.Set(store.KeyScores, raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		s.errlog.Report("scores.save", "persist score ledger failed", err)
		return err
	}
	return nil
}
