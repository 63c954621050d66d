// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package metrics defines the Prometheus collectors for CampusNavigator.
// All collectors are registered with the default registry via promauto and
// exposed on GET /metrics.
package metrics
