// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package database

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Asha@Illinois.EDU", "asha@illinois.edu"},
		{"  asha@illinois.edu  ", "asha@illinois.edu"},
		{"asha@illinois.edu", "asha@illinois.edu"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateAndGetUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.CreateUser(ctx, "Asha", "Asha@Illinois.EDU", []byte("hash"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == "" {
		t.Error("created user has empty id")
	}
	if created.Email != "asha@illinois.edu" {
		t.Errorf("stored email = %q, want normalized", created.Email)
	}

	byEmail, err := db.GetUserByEmail(ctx, "ASHA@illinois.edu")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("lookup by email returned id %q, want %q", byEmail.ID, created.ID)
	}

	byID, err := db.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Name != "Asha" || string(byID.PasswordHash) != "hash" {
		t.Errorf("round-tripped user = %+v", byID)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateUser(ctx, "Asha", "asha@illinois.edu", []byte("h1")); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}

	// Same email modulo case and whitespace.
	_, err := db.CreateUser(ctx, "Impostor", "  ASHA@illinois.edu ", []byte("h2"))
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate CreateUser = %v, want ErrEmailExists", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.GetUserByEmail(ctx, "ghost@illinois.edu"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByEmail = %v, want ErrUserNotFound", err)
	}
	if _, err := db.GetUserByID(ctx, "no-such-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByID = %v, want ErrUserNotFound", err)
	}
}

func TestConcurrentSignupsOneWinner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = db.CreateUser(ctx, "Racer", "shared@illinois.edu", []byte("h"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrEmailExists):
		default:
			t.Errorf("racer %d unexpected error: %v", i, err)
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}

	if _, err := db.GetUserByEmail(ctx, "shared@illinois.edu"); err != nil {
		t.Errorf("winning account should be readable: %v", err)
	}
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()

	created, err := db.CreateUser(ctx, "Disk", "disk@illinois.edu", []byte("h"))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and verify persistence.
	db2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	got, err := db2.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID after reopen: %v", err)
	}
	if got.Email != "disk@illinois.edu" {
		t.Errorf("persisted email = %q", got.Email)
	}
}
