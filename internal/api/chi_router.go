// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelist/reelist/internal/config"
	"github.com/reelist/reelist/internal/middleware"
)

// Router wires the handler into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router around the given handler, deriving middleware
// settings from the API configuration.
func NewRouter(cfg *config.Config, handler *Handler) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.API.CORSAllowedOrigins
	mwConfig.RateLimitRequests = cfg.API.RateLimitRequests
	mwConfig.RateLimitWindow = cfg.API.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.API.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to all routes in order. CORS must be global to
	// handle OPTIONS preflight.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints get a permissive limit so monitors can poll often.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Core API endpoints. Mutations carry a stricter write limit and the
	// dataset interchange endpoints a stricter one still, both applied
	// per-route on top of the default limiter.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/movies", router.handler.Movies)
		r.Get("/movies/{index}", router.handler.Movie)
		r.Get("/search/titles", router.handler.SearchTitles)
		r.Get("/stats", router.handler.Stats)
		r.Get("/suggest", router.handler.Suggest)

		r.With(router.chiMiddleware.RateLimitWrite()).
			Put("/movies/{index}/rating", router.handler.SetRating)
		r.With(router.chiMiddleware.RateLimitWrite()).
			Put("/movies/{index}/watched", router.handler.SetWatched)

		r.With(router.chiMiddleware.RateLimitDataset()).
			Get("/export", router.handler.ExportDataset)
		r.With(router.chiMiddleware.RateLimitDataset()).
			Post("/import", router.handler.ImportDataset)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
