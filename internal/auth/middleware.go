// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/vestra-app/vestra/internal/logging"
	"github.com/vestra-app/vestra/internal/metrics"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Authenticate returns middleware that requires a valid Bearer token on
// every request it wraps. Validated claims are stored in the request context
// for handlers to read via ClaimsFromContext.
func Authenticate(m *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				metrics.RecordAuthAttempt("missing_token")
				respondUnauthorized(w, "Authentication required")
				return
			}

			claims, err := m.ValidateToken(token)
			if err != nil {
				metrics.RecordAuthAttempt("invalid_token")
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Rejected invalid token")
				respondUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the validated claims stored by Authenticate, or
// nil when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// respondUnauthorized writes a 401 with the API's error envelope. Written
// here rather than via the api package to avoid an import cycle.
func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
