// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package models

// APIResponse is the envelope returned by every endpoint. OK mirrors the
// HTTP status class so clients can branch without inspecting status codes.
//
// Success:
//
//	{"ok": true, "user": {"id": "...", "name": "...", "email": "..."}}
//
// Failure:
//
//	{"ok": false, "message": "Invalid credentials."}
type APIResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// SuggestionResponse is the body of GET /api/campus/suggest. Categories
// always precede locations in the rendered dropdown.
type SuggestionResponse struct {
	Query      string               `json:"query"`
	Categories []CategorySuggestion `json:"categories"`
	Locations  []string             `json:"locations"`
}

// CategorySuggestion is one entry in the category group of the dropdown.
type CategorySuggestion struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
}

// MapStateResponse is the view state returned by the map session endpoints.
// The front-end applies it to whichever renderer is active.
type MapStateResponse struct {
	SessionID       string        `json:"session_id"`
	Mode            string        `json:"mode"`
	Viewport        ViewportState `json:"viewport"`
	Basemap         string        `json:"basemap"`
	VisibleGroups   []Category    `json:"visible_groups"`
	HighlightedCard string        `json:"highlighted_card,omitempty"`
	OpenPopup       string        `json:"open_popup,omitempty"`
}
