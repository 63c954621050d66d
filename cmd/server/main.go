// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

// Command server runs the CampusNavigator HTTP backend: the campus dataset
// and suggestion API, server-held map view sessions, account endpoints, the
// Prometheus endpoint and the static front-end.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chaitanya-116/CampusNavigator/internal/api"
	"github.com/Chaitanya-116/CampusNavigator/internal/auth"
	"github.com/Chaitanya-116/CampusNavigator/internal/config"
	"github.com/Chaitanya-116/CampusNavigator/internal/database"
	"github.com/Chaitanya-116/CampusNavigator/internal/logging"
	"github.com/Chaitanya-116/CampusNavigator/internal/mapview"
	"github.com/Chaitanya-116/CampusNavigator/internal/search"
	"github.com/Chaitanya-116/CampusNavigator/internal/supervisor"
	"github.com/Chaitanya-116/CampusNavigator/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Database.Path).
		Msg("Starting CampusNavigator")

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logging.Err(closeErr).Msg("Failed to close account store")
		}
	}()

	tokens, err := auth.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.SessionLifetime())
	if err != nil {
		return err
	}
	authSvc := auth.NewService(db, tokens)
	cookies := auth.CookieConfig{
		Name:     cfg.Security.CookieName,
		Lifetime: cfg.Security.SessionLifetime(),
		Secure:   cfg.Security.CookieSecure,
	}

	engine := search.NewEngine(search.WithMinQueryLength(cfg.Search.MinQueryLength))
	registry := mapview.NewRegistry(nil, mapview.Config{
		RetryAttempts: cfg.Map.InitRetryAttempts,
		RetryInterval: cfg.Map.InitRetryInterval,
	}, cfg.Map.SessionTTL)

	handler := api.NewHandler(authSvc, cookies, engine, registry)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewReaperService(registry, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, 0))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Supervisor tree starting")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
