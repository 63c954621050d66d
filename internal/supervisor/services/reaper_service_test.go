// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingReaper struct {
	calls atomic.Int64
}

func (c *countingReaper) ReapExpired() int {
	c.calls.Add(1)
	return 0
}

func TestReaperServiceRunsPeriodically(t *testing.T) {
	reaper := &countingReaper{}
	svc := NewReaperService(reaper, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for reaper.calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("reaper never ticked")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestReaperServiceString(t *testing.T) {
	svc := NewReaperService(&countingReaper{}, 0)
	if svc.String() != "map-session-reaper" {
		t.Errorf("String() = %q", svc.String())
	}
}
