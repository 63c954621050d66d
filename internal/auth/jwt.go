// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token failure: missing, expired, tampered,
// or signed with the wrong algorithm. Callers treat all of them as
// unauthenticated; the distinction is only logged.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the session token payload: the public user identity plus the
// registered expiry/issuance claims.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager creates and validates the signed session tokens embedded in
// the auth cookie. Tokens use HMAC-SHA256; the secret is process-wide static
// configuration.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenManager builds a token manager. The secret must be non-empty.
func NewTokenManager(secret string, lifetime time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}, nil
}

// Lifetime returns the configured token lifetime.
func (m *TokenManager) Lifetime() time.Duration {
	return m.lifetime
}

// Generate signs a session token for the given user identity.
func (m *TokenManager) Generate(userID, email, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a session token, rejecting any signing
// method other than HMAC to prevent algorithm confusion.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
