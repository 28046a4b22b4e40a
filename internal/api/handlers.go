// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"net/http"
	"time"

	"github.com/vestra-app/vestra/internal/auth"
	"github.com/vestra-app/vestra/internal/recommend"
	"github.com/vestra-app/vestra/internal/store"
	"github.com/vestra-app/vestra/internal/weather"
)

// Handler bundles the dependencies every endpoint needs.
type Handler struct {
	store   *store.Store
	engine  *recommend.Engine
	authn   *auth.Authenticator
	weather weather.Provider // nil when weather lookup is disabled

	startedAt time.Time
	version   string
}

// NewHandler creates the handler set. The weather provider may be nil, in
// which case the weather endpoint reports the feature as disabled.
func NewHandler(s *store.Store, engine *recommend.Engine, authn *auth.Authenticator, wp weather.Provider, version string) *Handler {
	return &Handler{
		store:     s,
		engine:    engine,
		authn:     authn,
		weather:   wp,
		startedAt: time.Now(),
		version:   version,
	}
}

// currentUser returns the authenticated username. Routes behind the auth
// middleware always have claims; the empty string only occurs on
// misconfigured routing and fails closed at the store (no records match).
func currentUser(r *http.Request) string {
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}

// Health reports liveness plus basic build information.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"version":        h.version,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}
