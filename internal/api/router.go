// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vestra-app/vestra/internal/auth"
	"github.com/vestra-app/vestra/internal/config"
	"github.com/vestra-app/vestra/internal/metrics"
	"github.com/vestra-app/vestra/internal/middleware"
)

// Router assembles the HTTP routing table.
type Router struct {
	handler *Handler
	cfg     *config.SecurityConfig
	jwt     *auth.JWTManager
}

// NewRouter creates a router around the given handler set.
func NewRouter(handler *Handler, cfg *config.SecurityConfig, jwt *auth.JWTManager) *Router {
	return &Router{handler: handler, cfg: cfg, jwt: jwt}
}

// Setup configures all HTTP routes using Chi.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))

	// Health and metrics stay outside the authenticated group so probes and
	// scrapers need no token.
	r.Get("/api/v1/health", router.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Login gets the strictest rate limit for brute force prevention.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(router.rateLimit(5, 5*time.Minute)).Post("/login", router.handler.Login)
	})

	// All data endpoints require authentication.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit(router.cfg.RateLimitReqs, router.cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)
		r.Use(auth.Authenticate(router.jwt))

		r.Route("/wardrobe", func(r chi.Router) {
			r.Get("/", router.handler.ListWardrobeItems)
			r.Post("/", router.handler.CreateWardrobeItem)
			r.Get("/{itemID}", router.handler.GetWardrobeItem)
			r.Put("/{itemID}", router.handler.UpdateWardrobeItem)
			r.Delete("/{itemID}", router.handler.DeleteWardrobeItem)
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", router.handler.ListListings)
			r.Post("/", router.handler.CreateListing)
			r.Get("/{listingID}", router.handler.GetListing)
			r.Put("/{listingID}", router.handler.UpdateListing)
			r.Delete("/{listingID}", router.handler.DeleteListing)
		})

		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", router.handler.ListOutfits)
			r.Post("/", router.handler.SaveOutfit)
			r.Delete("/{outfitID}", router.handler.DeleteOutfit)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/outfit", router.handler.RecommendOutfit)
			r.Get("/categories", router.handler.RecommendationCategories)
		})

		r.Get("/weather", router.handler.CurrentWeather)
	})

	return r
}

// rateLimit returns an IP-keyed rate limiter, or a no-op when disabled.
func (router *Router) rateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if router.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, "Too many requests")
		}),
	)
}
