// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store defines the ledger store: a durable mapping from short
// string keys to opaque serialized values, plus the BadgerDB-backed
// implementation used in production.
//
// The engine never talks to this package directly; the repo package sits
// between them and owns serialization. Values are opaque here.
package store

import (
	"errors"
	"fmt"
	"time"

	dgbadger "github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// -----------------------------------------------------------------------------
// Keys
// -----------------------------------------------------------------------------

// Persisted keys. Each holds one JSON-serialized value; there is no
// per-entity keying, the full list is the unit of read and write.
const (
	KeyHabits    = "habits"
	KeySettings  = "settings"
	KeyScores    = "scores"
	KeyErrorLogs = "error_logs"
	KeyTasks     = "tasks"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("key not found")

	// ErrStoreClosed is returned by Get, Set, and Remove after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cadence_store_operations_total",
		Help: "Total ledger store operations by operation and status",
	}, []string{"operation", "status"})

	opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cadence_store_operation_duration_seconds",
		Help:    "Ledger store operation latency",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	}, []string{"operation"})

	valueBytes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cadence_store_value_bytes",
		Help: "Size of the most recently written value per key",
	}, []string{"key"})
)

func observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	opsTotal.WithLabelValues(op, status).Inc()
	opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// -----------------------------------------------------------------------------
// Store
// -----------------------------------------------------------------------------

// Store is the key-value persistence contract the ledger runs on.
//
// Implementations must treat each call as atomic and synchronous; the
// single-writer model above this interface assumes no interleaving between
// a read and the write that follows it.
type Store interface {
	// Get returns the value for key, or ErrNotFound if never written.
	Get(key string) ([]byte, error)

	// Set durably writes value under key, replacing any prior value.
	Set(key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases the underlying database.
	Close() error
}

// BadgerStore implements Store on an embedded BadgerDB.
type BadgerStore struct {
	db *dgbadger.DB
}

// NewBadgerStore wraps an opened BadgerDB. The store takes ownership of the
// database; Close closes it.
func NewBadgerStore(db *dgbadger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Get returns the value stored under key.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	start := time.Now()
	var value []byte
	err := s.db.View(func(txn *dgbadger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case errors.Is(err, dgbadger.ErrKeyNotFound):
		err = fmt.Errorf("%w: %s", ErrNotFound, key)
	case errors.Is(err, dgbadger.ErrDBClosed):
		err = fmt.Errorf("%w: get %s", ErrStoreClosed, key)
	}
	observe("get", start, err)
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes value under key.
func (s *BadgerStore) Set(key string, value []byte) error {
	start := time.Now()
	err := s.db.Update(func(txn *dgbadger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if errors.Is(err, dgbadger.ErrDBClosed) {
		err = ErrStoreClosed
	}
	observe("set", start, err)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	valueBytes.WithLabelValues(key).Set(float64(len(value)))
	return nil
}

// Remove deletes key. Absent keys are ignored; removal is idempotent.
func (s *BadgerStore) Remove(key string) error {
	start := time.Now()
	err := s.db.Update(func(txn *dgbadger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, dgbadger.ErrDBClosed) {
		err = ErrStoreClosed
	}
	observe("remove", start, err)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

var _ Store = (*BadgerStore)(nil)
