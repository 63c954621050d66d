// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Package database implements the persistent account store on BadgerDB.
//
// Accounts are stored as JSON documents under user:id:<uuid> with a
// secondary index user:email:<normalized> pointing back at the id. Both keys
// are written in one transaction, so email uniqueness holds under concurrent
// signups: Badger's serializable transactions make the losing writer observe
// either the existing index entry or a commit conflict, and both surface as
// ErrEmailExists.
package database
