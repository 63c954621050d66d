// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"errors"
	"testing"
	"time"
)

// withFakeClock pins the registry to a controllable clock.
func withFakeClock(r *Registry) *time.Time {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return &now
}

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	withFakeClock(r)

	id, ctrl, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" || ctrl == nil {
		t.Fatal("Create returned empty id or nil controller")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	got, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != ctrl {
		t.Error("Get returned a different controller")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	if _, err := r.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrSessionNotFound", err)
	}
}

func TestRegistryExpiry(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	now := withFakeClock(r)

	id, _, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = now.Add(2 * time.Minute)
	if _, err := r.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(expired) = %v, want ErrSessionNotFound", err)
	}
	if r.Len() != 0 {
		t.Errorf("expired session should be dropped on access, Len() = %d", r.Len())
	}
}

func TestRegistrySlidingTTL(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	now := withFakeClock(r)

	id, _, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Touch the session every 40s; it must stay alive past the original
	// expiry because each access slides the window.
	for i := 0; i < 4; i++ {
		*now = now.Add(40 * time.Second)
		if _, err := r.Get(id); err != nil {
			t.Fatalf("Get after %d slides: %v", i+1, err)
		}
	}
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	withFakeClock(r)

	id, _, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.Delete(id)
	if r.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", r.Len())
	}
	// Idempotent.
	r.Delete(id)

	if _, err := r.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(deleted) = %v, want ErrSessionNotFound", err)
	}
}

func TestRegistryReapExpired(t *testing.T) {
	r := NewRegistry(nil, fastConfig(), time.Minute)
	now := withFakeClock(r)

	if _, _, err := r.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := r.Create(); err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = now.Add(30 * time.Second)
	fresh, _, err := r.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = now.Add(45 * time.Second)
	if removed := r.ReapExpired(); removed != 2 {
		t.Errorf("ReapExpired() = %d, want 2", removed)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 survivor", r.Len())
	}
	if _, err := r.Get(fresh); err != nil {
		t.Errorf("fresh session should survive the reap: %v", err)
	}
}

func TestRegistryCreateFailure(t *testing.T) {
	f := &trackingFactory{flatFailures: 100}
	r := NewRegistry(f, fastConfig(), time.Minute)

	if _, _, err := r.Create(); !errors.Is(err, ErrRendererUnavailable) {
		t.Fatalf("Create = %v, want ErrRendererUnavailable", err)
	}
	if r.Len() != 0 {
		t.Errorf("failed create must not register a session, Len() = %d", r.Len())
	}
}
