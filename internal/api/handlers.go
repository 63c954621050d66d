// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"github.com/Chaitanya-116/CampusNavigator/internal/auth"
	"github.com/Chaitanya-116/CampusNavigator/internal/mapview"
	"github.com/Chaitanya-116/CampusNavigator/internal/search"
)

// Handler bundles the services behind the HTTP endpoints.
type Handler struct {
	auth     *auth.Service
	cookies  auth.CookieConfig
	engine   *search.Engine
	sessions *mapview.Registry
}

// NewHandler creates the API handler.
func NewHandler(authSvc *auth.Service, cookies auth.CookieConfig, engine *search.Engine, sessions *mapview.Registry) *Handler {
	return &Handler{
		auth:     authSvc,
		cookies:  cookies,
		engine:   engine,
		sessions: sessions,
	}
}
