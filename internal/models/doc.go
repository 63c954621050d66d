// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package models defines the shared data structures for CampusNavigator:
// the campus dataset types (locations, markers, categories, viewports),
// account types, and the JSON shapes returned by the HTTP API.
//
// Types in this package are plain data carriers. Behavior lives in the
// packages that own the data: internal/campus for the static dataset,
// internal/mapview for viewport handling, internal/database for accounts.
package models
