// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package logging provides the centralized zerolog-based logger for
// CampusNavigator.
//
// Initialize once at startup, then use the package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//
// LOG_FORMAT=console switches to human-readable output for development.
// Always terminate log chains with .Msg() or .Send().
package logging
