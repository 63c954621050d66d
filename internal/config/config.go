// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package config

import (
	"fmt"
	"time"

	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
)

// DevJWTSecret is the fallback signing secret for local development. Using
// it in production is logged loudly at startup.
const DevJWTSecret = "dev-secret-change-me"

// Config is the root configuration, populated from defaults, an optional
// YAML file and environment variables.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Search   SearchConfig   `koanf:"search"`
	Map      MapConfig      `koanf:"map"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`
	ClientOrigin string        `koanf:"client_origin"`
	WebDir       string        `koanf:"web_dir"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the embedded account store settings.
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// SecurityConfig holds session token, cookie and rate limit settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	CookieName        string        `koanf:"cookie_name"`
	CookieDays        int           `koanf:"cookie_days"`
	CookieSecure      bool          `koanf:"cookie_secure"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SessionLifetime returns the cookie/token lifetime as a duration.
func (c SecurityConfig) SessionLifetime() time.Duration {
	return time.Duration(c.CookieDays) * 24 * time.Hour
}

// LoggingConfig mirrors logging.Config for koanf unmarshaling.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SearchConfig holds suggestion engine settings.
type SearchConfig struct {
	MinQueryLength int `koanf:"min_query_length"`
}

// MapConfig holds map view controller and session registry settings.
type MapConfig struct {
	InitRetryAttempts int           `koanf:"init_retry_attempts"`
	InitRetryInterval time.Duration `koanf:"init_retry_interval"`
	SessionTTL        time.Duration `koanf:"session_ttl"`
}

// Validate checks the configuration for values that cannot work. It does not
// try to be exhaustive; it catches the mistakes that would otherwise surface
// as confusing runtime failures.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret must not be empty")
	}
	if c.Security.CookieName == "" {
		return fmt.Errorf("security.cookie_name must not be empty")
	}
	if c.Security.CookieDays < 1 {
		return fmt.Errorf("security.cookie_days must be positive, got %d", c.Security.CookieDays)
	}
	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("search.min_query_length must be positive, got %d", c.Search.MinQueryLength)
	}
	if c.Map.InitRetryAttempts < 1 {
		return fmt.Errorf("map.init_retry_attempts must be positive, got %d", c.Map.InitRetryAttempts)
	}
	if c.Map.SessionTTL <= 0 {
		return fmt.Errorf("map.session_ttl must be positive, got %s", c.Map.SessionTTL)
	}

	if c.Security.JWTSecret == DevJWTSecret {
		logging.Warn().Msg("Using the development JWT secret; set JWT_SECRET before exposing this server")
	}
	return nil
}
