// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package services

import (
	"context"
	"time"

	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
)

// SessionReaper is the slice of the map session registry the reaper needs.
// Satisfied by *mapview.Registry.
type SessionReaper interface {
	ReapExpired() int
}

// ReaperService periodically drops expired map view sessions so abandoned
// page loads do not pin controllers in memory.
type ReaperService struct {
	registry SessionReaper
	interval time.Duration
	name     string
}

// NewReaperService creates the session reaper. A non-positive interval
// defaults to one minute.
func NewReaperService(registry SessionReaper, interval time.Duration) *ReaperService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReaperService{
		registry: registry,
		interval: interval,
		name:     "map-session-reaper",
	}
}

// Serve implements suture.Service.
func (s *ReaperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.registry.ReapExpired(); removed > 0 {
				logging.Debug().Int("removed", removed).Msg("Reaped expired map sessions")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *ReaperService) String() string {
	return s.name
}
