// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Chaitanya-116/CampusNavigator/internal/mapview"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// mapFilterRequest is the body of POST /api/map/sessions/{id}/filter.
type mapFilterRequest struct {
	Category models.Category `json:"category"`
}

// mapFocusRequest is the body of POST /api/map/sessions/{id}/focus.
type mapFocusRequest struct {
	Query string `json:"query"`
}

// mapBasemapRequest is the body of POST /api/map/sessions/{id}/basemap.
type mapBasemapRequest struct {
	Name string `json:"name"`
}

// mapZoomRequest is the body of POST /api/map/sessions/{id}/zoom.
type mapZoomRequest struct {
	Direction string `json:"direction"` // "in" or "out"
}

// mapFocusResponse extends the view state with the focus outcome so the
// front-end can highlight a card or open a popup.
type mapFocusResponse struct {
	models.MapStateResponse
	Focus mapview.FocusResult `json:"focus"`
}

// HandleMapSessionCreate answers POST /api/map/sessions: a fresh controller
// with markers populated and the view fit to the full campus.
func (h *Handler) HandleMapSessionCreate(w http.ResponseWriter, r *http.Request) {
	id, ctrl, err := h.sessions.Create()
	if err != nil {
		if errors.Is(err, mapview.ErrRendererUnavailable) || errors.Is(err, mapview.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, "Map failed to load. Please refresh the page.")
			return
		}
		respondInternalError(w, r, err)
		return
	}

	state := ctrl.State()
	state.SessionID = id
	respondJSON(w, http.StatusCreated, models.APIResponse{OK: true, Data: state})
}

// HandleMapSessionState answers GET /api/map/sessions/{id}.
func (h *Handler) HandleMapSessionState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}
	h.respondMapState(w, id, ctrl)
}

// HandleMapSessionDelete answers DELETE /api/map/sessions/{id}. Idempotent.
func (h *Handler) HandleMapSessionDelete(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true})
}

// HandleMapToggle answers POST /api/map/sessions/{id}/toggle, switching
// between the 2D and pseudo-3D renderers.
func (h *Handler) HandleMapToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}
	if _, err := ctrl.Toggle(); err != nil {
		h.respondMapError(w, r, err)
		return
	}
	h.respondMapState(w, id, ctrl)
}

// HandleMapFilter answers POST /api/map/sessions/{id}/filter.
func (h *Handler) HandleMapFilter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}

	var req mapFilterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := ctrl.FilterByCategory(req.Category); err != nil {
		h.respondMapError(w, r, err)
		return
	}
	h.respondMapState(w, id, ctrl)
}

// HandleMapFocus answers POST /api/map/sessions/{id}/focus.
func (h *Handler) HandleMapFocus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}

	var req mapFocusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	focus, err := ctrl.FocusOnSearch(req.Query)
	if err != nil {
		h.respondMapError(w, r, err)
		return
	}

	state := ctrl.State()
	state.SessionID = id
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, Data: mapFocusResponse{
		MapStateResponse: state,
		Focus:            focus,
	}})
}

// HandleMapBasemap answers POST /api/map/sessions/{id}/basemap.
func (h *Handler) HandleMapBasemap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}

	var req mapBasemapRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := ctrl.SetBasemap(req.Name); err != nil {
		if errors.Is(err, mapview.ErrUnknownBasemap) {
			respondError(w, http.StatusBadRequest, "Unknown basemap.")
			return
		}
		h.respondMapError(w, r, err)
		return
	}
	h.respondMapState(w, id, ctrl)
}

// HandleMapZoom answers POST /api/map/sessions/{id}/zoom.
func (h *Handler) HandleMapZoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Map session not found.")
		return
	}

	var req mapZoomRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	switch req.Direction {
	case "in":
		err = ctrl.ZoomIn()
	case "out":
		err = ctrl.ZoomOut()
	default:
		respondError(w, http.StatusBadRequest, "Zoom direction must be \"in\" or \"out\".")
		return
	}
	if err != nil {
		h.respondMapError(w, r, err)
		return
	}
	h.respondMapState(w, id, ctrl)
}

func (h *Handler) respondMapState(w http.ResponseWriter, id string, ctrl *mapview.Controller) {
	state := ctrl.State()
	state.SessionID = id
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, Data: state})
}

func (h *Handler) respondMapError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, mapview.ErrRendererUnavailable) || errors.Is(err, mapview.ErrNotReady) {
		respondError(w, http.StatusServiceUnavailable, "Map failed to load. Please refresh the page.")
		return
	}
	respondInternalError(w, r, err)
}
