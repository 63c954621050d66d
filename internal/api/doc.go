// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package api implements the HTTP surface: the chi router, the JSON
// handlers under /api, the Prometheus endpoint and the static front-end
// file server.
//
// Every JSON endpoint answers with the same envelope:
//
//	{"ok": true, "user": {...}}          success
//	{"ok": false, "message": "..."}      failure
//
// Unexpected failures become a generic 500; details are logged server-side
// only.
package api
