// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vestra-app/vestra/internal/logging"
	"github.com/vestra-app/vestra/internal/metrics"
	"github.com/vestra-app/vestra/internal/recommend"
)

// RecommendOutfit runs the full recommendation pipeline over the caller's
// wardrobe. Preference parameters are free text; unrecognized values simply
// contribute nothing to scoring.
func (h *Handler) RecommendOutfit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	prefs := recommend.Preferences{
		Occasion: q.Get("occasion"),
		Weather:  q.Get("weather"),
		Style:    q.Get("style"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			rw.BadRequest("limit must be a positive integer")
			return
		}
		prefs.Limit = limit
	}

	// When no weather preference was supplied, try to resolve one from the
	// caller's coordinates. Lookup failures leave the dimension unset.
	if prefs.Weather == "" && h.weather != nil {
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		if latErr == nil && lonErr == nil {
			if obs, err := h.weather.Current(r.Context(), lat, lon); err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Weather enrichment failed")
			} else {
				prefs.Weather = obs.Label
			}
		}
	}

	start := time.Now()
	resp, err := h.engine.Recommend(r.Context(), currentUser(r), prefs)
	if err != nil {
		rw.StorageError(err)
		return
	}
	metrics.RecordRecommendation(time.Since(start), resp.TotalItems, len(resp.Recommendations))

	rw.SuccessWithMeta(resp, &APIMeta{Count: len(resp.Recommendations)})
}

// RecommendationCategories returns the distinct occasion, weather and style
// labels observed in the caller's wardrobe, with fixed fallbacks when a
// dimension has none.
func (h *Handler) RecommendationCategories(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	cats, err := h.engine.Categories(r.Context(), currentUser(r))
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(cats)
}

// CurrentWeather resolves a coarse weather label for the given coordinates,
// for clients to pre-fill the weather preference. Lookup failures return an
// error response but never affect recommendation requests.
func (h *Handler) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.weather == nil {
		rw.NotFound("Weather lookup is not enabled")
		return
	}

	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		rw.BadRequest("lat and lon must be valid coordinates")
		return
	}

	obs, err := h.weather.Current(r.Context(), lat, lon)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Weather lookup failed")
		rw.Error(http.StatusBadGateway, ErrCodeExternalService, "Weather lookup failed")
		return
	}
	rw.Success(obs)
}
