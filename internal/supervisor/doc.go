// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package supervisor builds the suture v4 supervision tree: a data layer
// running the map-session reaper and an api layer running the HTTP server.
// Supervisor events are logged through sutureslog over the zerolog slog
// bridge.
package supervisor
