// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Chaitanya-116/CampusNavigator/internal/config"
	"github.com/Chaitanya-116/CampusNavigator/internal/middleware"
)

// NewRouter builds the chi router: global middleware, the /api route groups,
// the Prometheus endpoint, and the static front-end file server.
func NewRouter(cfg *config.Config, handler *Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		if !cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
		}

		r.Get("/health", handler.HandleHealth)

		// Stricter window on credential endpoints to slow brute force.
		r.Route("/auth", func(r chi.Router) {
			if !cfg.Security.RateLimitDisabled {
				r.Use(httprate.LimitByIP(10, time.Minute))
			}
			r.Post("/signup", handler.HandleSignup)
			r.Post("/login", handler.HandleLogin)
			r.Post("/logout", handler.HandleLogout)
			r.Get("/me", handler.HandleMe)
		})

		r.Route("/campus", func(r chi.Router) {
			r.Get("/locations", handler.HandleLocations)
			r.Get("/markers", handler.HandleMarkers)
			r.Get("/suggest", handler.HandleSuggest)
		})

		r.Route("/map/sessions", func(r chi.Router) {
			r.Post("/", handler.HandleMapSessionCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleMapSessionState)
				r.Delete("/", handler.HandleMapSessionDelete)
				r.Post("/toggle", handler.HandleMapToggle)
				r.Post("/filter", handler.HandleMapFilter)
				r.Post("/focus", handler.HandleMapFocus)
				r.Post("/basemap", handler.HandleMapBasemap)
				r.Post("/zoom", handler.HandleMapZoom)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Static front-end. chi needs the wildcard route for nested paths.
	fileServer := http.FileServer(http.Dir(cfg.Server.WebDir))
	r.Handle("/*", fileServer)

	return r
}
