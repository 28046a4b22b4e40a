// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vestra-app/vestra/internal/auth"
	"github.com/vestra-app/vestra/internal/logging"
	"github.com/vestra-app/vestra/internal/metrics"
	"github.com/vestra-app/vestra/internal/validation"
)

// LoginRequest is the login endpoint's request body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and issues a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	token, err := h.authn.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.RecordAuthAttempt("invalid_credentials")
			logging.Ctx(r.Context()).Warn().Str("username", req.Username).Msg("Failed login attempt")
			rw.Unauthorized("Invalid username or password")
			return
		}
		rw.InternalError("Login failed")
		return
	}

	metrics.RecordAuthAttempt("success")
	logging.Ctx(r.Context()).Info().Str("username", req.Username).Msg("User logged in")
	rw.Success(LoginResponse{Token: token})
}
