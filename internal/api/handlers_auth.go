// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"errors"
	"net/http"

	"github.com/Chaitanya-116/CampusNavigator/internal/auth"
	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
	"github.com/Chaitanya-116/CampusNavigator/internal/validation"
)

// HandleSignup answers POST /api/auth/signup.
//
// 201 with the public user and a session cookie on success, 400 for a
// missing or malformed field, 409 for a registered email.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "All fields are required.")
		return
	case errors.Is(err, auth.ErrEmailTaken):
		respondError(w, http.StatusConflict, "An account with this email already exists.")
		return
	case err != nil:
		respondInternalError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, h.cookies, token)
	respondJSON(w, http.StatusCreated, models.APIResponse{OK: true, User: &user})
}

// HandleLogin answers POST /api/auth/login.
//
// The 401 message is identical for an unknown email and a wrong password.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Email and password are required.")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	case err != nil:
		respondInternalError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, h.cookies, token)
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, User: &user})
}

// HandleLogout answers POST /api/auth/logout. Idempotent; succeeds with or
// without a session cookie.
func (h *Handler) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearSessionCookie(w, h.cookies)
	respondJSON(w, http.StatusOK, models.APIResponse{OK: true})
}

// HandleMe answers GET /api/auth/me. Every failure mode is 401: a missing,
// expired or tampered cookie, a deleted account, and even a store failure
// (logged) so the front-end can always treat non-200 as signed-out.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.SessionTokenFromRequest(r, h.cookies)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	claims, err := h.auth.Tokens().Validate(token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	user, err := h.auth.Me(r.Context(), claims)
	if err != nil {
		if !errors.Is(err, auth.ErrNotAuthenticated) {
			logging.Err(err).Msg("Account lookup failed during session check")
		}
		respondError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	respondJSON(w, http.StatusOK, models.APIResponse{OK: true, User: &user})
}
