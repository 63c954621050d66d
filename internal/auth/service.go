// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Chaitanya-116/CampusNavigator/internal/database"
	"github.com/Chaitanya-116/CampusNavigator/internal/metrics"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// bcryptCost matches the cost the original deployment hashed with, so
// existing password hashes keep verifying.
const bcryptCost = 10

// Domain errors mapped to HTTP status codes by the handlers.
var (
	// ErrMissingFields indicates a signup/login body with an empty field.
	ErrMissingFields = errors.New("missing required fields")

	// ErrEmailTaken indicates a signup against a registered email.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is deliberately undifferentiated: it covers
	// both an unknown email and a wrong password so responses cannot be
	// used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated indicates a missing/invalid session or a session
	// referencing a deleted account.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AccountStore is the slice of the database the session service needs.
// Satisfied by *database.DB.
type AccountStore interface {
	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (*models.UserAccount, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	GetUserByID(ctx context.Context, id string) (*models.UserAccount, error)
}

// Service implements the account operations behind the auth endpoints.
// Password hashes never leave this package or the store.
type Service struct {
	store  AccountStore
	tokens *TokenManager
}

// NewService builds the session service.
func NewService(store AccountStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Tokens exposes the token manager for cookie issuance in handlers.
func (s *Service) Tokens() *TokenManager {
	return s.tokens
}

// Signup creates an account and returns the public user plus a signed
// session token. Email uniqueness is enforced by the store; a duplicate
// surfaces as ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, name, email, password string) (models.PublicUser, string, error) {
	if name == "" || email == "" || password == "" {
		return models.PublicUser{}, "", ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, database.ErrEmailExists) {
			metrics.AuthAttempts.WithLabelValues("signup", "conflict").Inc()
			return models.PublicUser{}, "", ErrEmailTaken
		}
		metrics.AuthAttempts.WithLabelValues("signup", "error").Inc()
		return models.PublicUser{}, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return models.PublicUser{}, "", err
	}
	metrics.AuthAttempts.WithLabelValues("signup", "ok").Inc()
	return user.Public(), token, nil
}

// Login verifies credentials and returns the public user plus a signed
// session token. Unknown email and wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (models.PublicUser, string, error) {
	if email == "" || password == "" {
		return models.PublicUser{}, "", ErrMissingFields
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			metrics.AuthAttempts.WithLabelValues("login", "rejected").Inc()
			return models.PublicUser{}, "", ErrInvalidCredentials
		}
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		return models.PublicUser{}, "", err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		metrics.AuthAttempts.WithLabelValues("login", "rejected").Inc()
		return models.PublicUser{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return models.PublicUser{}, "", err
	}
	metrics.AuthAttempts.WithLabelValues("login", "ok").Inc()
	return user.Public(), token, nil
}

// Me resolves a validated token back to the stored account. A session
// referencing a deleted account is treated as unauthenticated, not an error.
func (s *Service) Me(ctx context.Context, claims *Claims) (models.PublicUser, error) {
	if claims == nil || claims.Subject == "" {
		return models.PublicUser{}, ErrNotAuthenticated
	}

	user, err := s.store.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return models.PublicUser{}, ErrNotAuthenticated
		}
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}
