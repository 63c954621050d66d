// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package config loads and validates application configuration using koanf
// v2 with layered sources: built-in defaults, an optional YAML file, and
// environment variables, in increasing precedence.
//
// Environment variables use flat legacy names (PORT, DATABASE_PATH,
// JWT_SECRET, ...) that are translated to nested koanf paths through an
// explicit mapping table; unknown variables are ignored.
package config
