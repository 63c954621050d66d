// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Chaitanya-116/CampusNavigator/internal/metrics"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// Key prefixes for BadgerDB storage.
const (
	userIDKeyPrefix    = "user:id:"
	userEmailKeyPrefix = "user:email:"
)

// NormalizeEmail lowercases and trims an email for storage and lookup. All
// uniqueness guarantees are in terms of the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists a new account with a fresh id. The email index entry
// and the account document are written in one transaction; a duplicate
// normalized email fails with ErrEmailExists, including when two signups
// race and the loser's commit conflicts.
func (db *DB) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.UserAccount, error) {
	user := &models.UserAccount{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}

	err = db.badger.Update(func(txn *badger.Txn) error {
		emailKey := []byte(userEmailKeyPrefix + user.Email)
		_, getErr := txn.Get(emailKey)
		if getErr == nil {
			return ErrEmailExists
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return fmt.Errorf("check email index: %w", getErr)
		}

		if setErr := txn.Set(emailKey, []byte(user.ID)); setErr != nil {
			return fmt.Errorf("set email index: %w", setErr)
		}
		if setErr := txn.Set([]byte(userIDKeyPrefix+user.ID), data); setErr != nil {
			return fmt.Errorf("set user: %w", setErr)
		}
		return nil
	})

	// A serialization conflict means another transaction touched the same
	// email index between our read and commit: the email now exists.
	if errors.Is(err, badger.ErrConflict) {
		err = ErrEmailExists
	}
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			metrics.StoreOperations.WithLabelValues("create_user", "conflict").Inc()
		} else {
			metrics.StoreOperations.WithLabelValues("create_user", "error").Inc()
		}
		return nil, err
	}

	metrics.StoreOperations.WithLabelValues("create_user", "ok").Inc()
	return user, nil
}

// GetUserByEmail looks an account up by normalized email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	norm := NormalizeEmail(email)

	var id string
	err := db.badger.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(userEmailKeyPrefix + norm))
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if getErr != nil {
			return fmt.Errorf("get email index: %w", getErr)
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.StoreOperations.WithLabelValues("get_by_email", "not_found").Inc()
		} else {
			metrics.StoreOperations.WithLabelValues("get_by_email", "error").Inc()
		}
		return nil, err
	}

	return db.GetUserByID(ctx, id)
}

// GetUserByID looks an account up by id.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.UserAccount, error) {
	var user models.UserAccount

	err := db.badger.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(userIDKeyPrefix + id))
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if getErr != nil {
			return fmt.Errorf("get user: %w", getErr)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.StoreOperations.WithLabelValues("get_by_id", "not_found").Inc()
		} else {
			metrics.StoreOperations.WithLabelValues("get_by_id", "error").Inc()
		}
		return nil, err
	}

	metrics.StoreOperations.WithLabelValues("get_by_id", "ok").Inc()
	return &user, nil
}
