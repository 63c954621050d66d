// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package auth

import (
	"net/http"
	"time"
)

// CookieConfig describes the session cookie. Secure stays false for plain
// HTTP development; set COOKIE_SECURE=true behind HTTPS.
type CookieConfig struct {
	Name     string
	Lifetime time.Duration
	Secure   bool
}

// SetSessionCookie writes the signed token as an HTTP-only, SameSite=Lax
// cookie.
func SetSessionCookie(w http.ResponseWriter, cfg CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Secure,
		MaxAge:   int(cfg.Lifetime / time.Second),
	})
}

// ClearSessionCookie expires the session cookie. Unconditional and
// idempotent: clearing an absent cookie is fine.
func ClearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Secure,
		MaxAge:   -1,
	})
}

// SessionTokenFromRequest extracts the raw token from the request cookie.
// The second return is false when the cookie is absent.
func SessionTokenFromRequest(r *http.Request, cfg CookieConfig) (string, bool) {
	c, err := r.Cookie(cfg.Name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
