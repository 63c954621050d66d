// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package database

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
)

// DB wraps the BadgerDB handle behind the account store operations.
type DB struct {
	badger *badger.DB
}

// Open opens (or creates) the store at path. The directory is created if
// missing. Badger's own logger is silenced; store events go through zerolog.
func Open(path string) (*DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open account store at %s: %w", path, err)
	}
	logging.Info().Str("path", path).Msg("Account store opened")
	return &DB{badger: db}, nil
}

// OpenInMemory opens an ephemeral store. Used by tests.
func OpenInMemory() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory account store: %w", err)
	}
	return &DB{badger: db}, nil
}

// Close flushes and closes the store.
func (db *DB) Close() error {
	return db.badger.Close()
}
