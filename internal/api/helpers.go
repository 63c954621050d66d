// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// maxBodyBytes bounds JSON request bodies. The largest legitimate body is a
// signup form; 64KiB is generous.
const maxBodyBytes = 64 << 10

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes a failure envelope with the given status and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.APIResponse{OK: false, Message: message})
}

// respondInternalError logs err and writes the generic 500 envelope. The
// error detail never reaches the client.
func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
