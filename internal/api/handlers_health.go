// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"net/http"
	"time"

	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// serviceName identifies this service in health responses.
const serviceName = "campus-navigator"

// HandleHealth answers GET /api/health.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{
		OK:      true,
		Service: serviceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
