// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package campus holds the static campus dataset: the location name list
// used by the suggestion engine, the marker table used by the map view
// controller, and the keyword alias table that resolves free text to
// canonical categories. The dataset is read-only after package init.
package campus
