// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order. The
// first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/campusnavigator/config.yaml",
	"/etc/campusnavigator/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all defaults applied. These are
// overridden by the config file and then by environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         5000,
			Host:         "0.0.0.0",
			Timeout:      30 * time.Second,
			ClientOrigin: "http://localhost:5173",
			WebDir:       "web",
		},
		Database: DatabaseConfig{
			Path: "/data/campusnavigator",
		},
		Security: SecurityConfig{
			JWTSecret:         DevJWTSecret,
			CookieName:        "campus_token",
			CookieDays:        7,
			CookieSecure:      false,
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Search: SearchConfig{
			MinQueryLength: 1,
		},
		Map: MapConfig{
			InitRetryAttempts: 10,
			InitRetryInterval: 200 * time.Millisecond,
			SessionTTL:        30 * time.Minute,
		},
	}
}

// Load builds the configuration using koanf v2 with layered sources:
//  1. Defaults from defaultConfig
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// PORT -> server.port, AUTH_COOKIE_DAYS -> security.cookie_days, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps flat environment variable names to nested config paths.
// Unmapped variables are ignored so random environment noise cannot leak
// into the configuration.
var envMappings = map[string]string{
	// Server
	"port":          "server.port",
	"http_host":     "server.host",
	"http_timeout":  "server.timeout",
	"client_origin": "server.client_origin",
	"web_dir":       "server.web_dir",

	// Database
	"database_path": "database.path",

	// Security
	"jwt_secret":          "security.jwt_secret",
	"auth_cookie_name":    "security.cookie_name",
	"auth_cookie_days":    "security.cookie_days",
	"cookie_secure":       "security.cookie_secure",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Search
	"search_min_query_len": "search.min_query_length",

	// Map
	"map_init_retry_attempts": "map.init_retry_attempts",
	"map_init_retry_interval": "map.init_retry_interval",
	"map_session_ttl":         "map.session_ttl",
}

func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
