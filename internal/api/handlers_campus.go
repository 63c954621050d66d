// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"net/http"

	"github.com/Chaitanya-116/CampusNavigator/internal/campus"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// HandleLocations answers GET /api/campus/locations with the static
// location list.
func (h *Handler) HandleLocations(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, Data: campus.Locations})
}

// HandleMarkers answers GET /api/campus/markers. An absent or unrecognized
// category parameter returns the full marker set, mirroring the map filter
// semantics.
func (h *Handler) HandleMarkers(w http.ResponseWriter, r *http.Request) {
	cat := models.Category(r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, Data: campus.MarkersByCategory(cat)})
}

// HandleSuggest answers GET /api/campus/suggest?q= with the suggestion
// groups, categories first.
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	s := h.engine.Suggest(query)
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, Data: models.SuggestionResponse{
		Query:      query,
		Categories: s.Categories,
		Locations:  s.Locations,
	}})
}
