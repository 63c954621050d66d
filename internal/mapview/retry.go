// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotReady is returned by a RendererFactory whose underlying rendering
// backend has not finished loading yet. The controller retries construction
// a bounded number of times before entering a terminal failure state.
var ErrNotReady = errors.New("rendering backend not ready")

// ErrRendererUnavailable is the terminal failure after the retry budget is
// exhausted. The message shown in the map container comes with it.
var ErrRendererUnavailable = errors.New("map renderer unavailable")

// RendererFactory constructs renderer adapters. A factory may legitimately
// fail with ErrNotReady while its backend loads; any other error is final.
type RendererFactory interface {
	Flat() (*FlatRenderer, error)
	Terrain() (*TerrainRenderer, error)
}

// DefaultFactory constructs renderers immediately. Production uses this; the
// retry machinery exists for backends that attach asynchronously.
type DefaultFactory struct{}

// Flat implements RendererFactory.
func (DefaultFactory) Flat() (*FlatRenderer, error) { return NewFlatRenderer(), nil }

// Terrain implements RendererFactory.
func (DefaultFactory) Terrain() (*TerrainRenderer, error) { return NewTerrainRenderer(), nil }

// retryPolicy is a bounded fixed-interval retry: attempt, sleep, attempt,
// up to Attempts total tries.
type retryPolicy struct {
	Attempts int
	Interval time.Duration
}

// run invokes fn until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. ErrNotReady is the only retryable error.
func (p retryPolicy) run(fn func() error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 && p.Interval > 0 {
			time.Sleep(p.Interval)
		}
		err = fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotReady) {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrRendererUnavailable, attempts, err)
}
