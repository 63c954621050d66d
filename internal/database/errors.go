// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package database

import "errors"

// Store errors. Handlers map these to HTTP status codes; anything else is a
// generic 500.
var (
	// ErrEmailExists indicates a signup against an already-registered
	// normalized email.
	ErrEmailExists = errors.New("email already registered")

	// ErrUserNotFound indicates a lookup for a missing account.
	ErrUserNotFound = errors.New("user not found")
)
