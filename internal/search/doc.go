// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package search implements the suggestion engine behind the search box.
//
// Matching is case-insensitive substring containment computed fresh on every
// query. The input set is small and fixed, so no index is maintained; a full
// scan is a few hundred nanoseconds and keeps the engine trivially correct.
// Suggestions are returned in two ordered groups: matching categories first
// (deduplicated by canonical category), then matching locations in static
// list order.
package search
