// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}

func TestNewTokenManagerDefaultLifetime(t *testing.T) {
	m, err := NewTokenManager("secret", 0)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	if got, want := m.Lifetime(), 7*24*time.Hour; got != want {
		t.Errorf("Lifetime() = %s, want %s", got, want)
	}
}

func TestGenerateValidateRoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := m.Generate("user-1", "asha@illinois.edu", "Asha")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Email != "asha@illinois.edu" || claims.Name != "Asha" {
		t.Errorf("identity claims = %q / %q", claims.Email, claims.Name)
	}
}

func TestValidateRejections(t *testing.T) {
	m, _ := NewTokenManager("secret", time.Hour)
	other, _ := NewTokenManager("different-secret", time.Hour)

	good, err := m.Generate("user-1", "a@b.edu", "A")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wrongKey, _ := other.Generate("user-1", "a@b.edu", "A")
	shortLived, _ := NewTokenManager("secret", time.Millisecond)
	expiredToken, _ := shortLived.Generate("user-1", "a@b.edu", "A")
	time.Sleep(5 * time.Millisecond)

	tampered := good[:len(good)-2] + "xx"

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong key", wrongKey},
		{"tampered signature", tampered},
		{"expired", expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate(%s) = %v, want ErrInvalidToken", tt.name, err)
			}
		})
	}
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	m, _ := NewTokenManager("secret", time.Hour)

	// Hand-built token with alg "none":
	// {"alg":"none","typ":"JWT"} . {"sub":"user-1"} . (empty signature)
	none := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1c2VyLTEifQ."
	if _, err := m.Validate(none); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("alg=none token = %v, want ErrInvalidToken", err)
	}
}

func TestGeneratedTokenIsCompact(t *testing.T) {
	m, _ := NewTokenManager("secret", time.Hour)
	token, err := m.Generate("user-1", "a@b.edu", "A")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not in compact JWS form", token)
	}
}
