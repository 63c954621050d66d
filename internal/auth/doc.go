// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package auth implements the session service: signup/login/logout/me
// against the account store, stateless HS256-signed session tokens, and the
// HTTP-only session cookie. The server keeps no session table; the token
// carries the user identity and its own expiry.
package auth
