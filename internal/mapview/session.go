// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Chaitanya-116/CampusNavigator/internal/metrics"
)

// ErrSessionNotFound is returned for an unknown or expired map session id.
var ErrSessionNotFound = errors.New("map session not found")

// DefaultSessionTTL is how long an idle map session survives. Each access
// slides the window forward; an abandoned page load is reaped after this.
const DefaultSessionTTL = 30 * time.Minute

// Registry holds the live map view sessions, one controller per page load.
// Controllers are created through the registry so the active-session gauge
// stays accurate.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	factory  RendererFactory
	cfg      Config
	ttl      time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	ctrl      *Controller
	expiresAt time.Time
}

// NewRegistry creates an empty session registry. A nil factory uses
// DefaultFactory; a non-positive ttl uses DefaultSessionTTL.
func NewRegistry(factory RendererFactory, cfg Config, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{
		sessions: make(map[string]*sessionEntry),
		factory:  factory,
		cfg:      cfg,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create builds a new controller, initializes it, and registers it under a
// fresh session id. The controller is returned alongside the id so the
// caller can report the initial view state.
func (r *Registry) Create() (string, *Controller, error) {
	ctrl := NewController(r.factory, r.cfg)
	if err := ctrl.Init(); err != nil {
		ctrl.Close()
		return "", nil, err
	}

	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &sessionEntry{ctrl: ctrl, expiresAt: r.now().Add(r.ttl)}
	metrics.MapSessionsActive.Set(float64(len(r.sessions)))
	r.mu.Unlock()
	return id, ctrl, nil
}

// Get returns the controller for id and slides its expiry window. Expired
// entries are treated as absent.
func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.now().After(entry.expiresAt) {
		delete(r.sessions, id)
		entry.ctrl.Close()
		metrics.MapSessionsActive.Set(float64(len(r.sessions)))
		return nil, ErrSessionNotFound
	}
	entry.expiresAt = r.now().Add(r.ttl)
	return entry.ctrl, nil
}

// Delete removes a session. Unknown ids are a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sessions[id]; ok {
		delete(r.sessions, id)
		entry.ctrl.Close()
		metrics.MapSessionsActive.Set(float64(len(r.sessions)))
	}
}

// ReapExpired drops every expired session and returns how many were removed.
// Called periodically by the session reaper service.
func (r *Registry) ReapExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.sessions {
		if now.After(entry.expiresAt) {
			delete(r.sessions, id)
			entry.ctrl.Close()
			removed++
		}
	}
	if removed > 0 {
		metrics.MapSessionsActive.Set(float64(len(r.sessions)))
	}
	return removed
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
