// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package mapview implements the map view controller: a small state machine
// over two renderer adapters (2D tile map and pseudo-3D terrain view) that
// owns marker placement, category layer visibility, basemap zoom clamping,
// and the viewport handoff when switching renderers.
//
// The controller is the server-side authority for view state. The browser
// applies whatever state the controller reports to its local rendering
// library; the adapters here model only the capability surface those
// libraries share (get/set viewport, get/set layer visibility, fit bounds).
//
// # Renderer handoff
//
// Switching 2D->3D captures the 2D viewport and applies it to the terrain
// renderer with zoom max(0, z-1); switching back applies the 3D viewport to
// the flat renderer with zoom z+1. The adjustment is asymmetric and not
// perfectly invertible; it matches the long-standing shipped behavior and is
// kept deliberately.
//
// # Concurrency
//
// A controller serializes all operations behind one mutex. Deferred effects
// (card highlight clearing, layout invalidation) are fire-and-forget timers
// with last-write-wins semantics; there is no operation queue.
package mapview
