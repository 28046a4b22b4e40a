// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/vestra-app/vestra/internal/logging"
	"github.com/vestra-app/vestra/internal/store"
	"github.com/vestra-app/vestra/internal/validation"
)

// SaveOutfitRequest is the request body for saving an outfit to history.
type SaveOutfitRequest struct {
	Name       string   `json:"name" validate:"max=200"`
	ItemIDs    []string `json:"item_ids" validate:"required,min=2,max=10,dive,required"`
	Occasion   string   `json:"occasion" validate:"max=50"`
	TotalScore float64  `json:"total_score" validate:"min=0"`
	Confidence int      `json:"confidence" validate:"min=0,max=100"`
}

// ListOutfits returns the caller's saved outfit history.
func (h *Handler) ListOutfits(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	outfits, err := h.store.ListOutfits(r.Context(), currentUser(r))
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.SuccessWithMeta(outfits, &APIMeta{Count: len(outfits)})
}

// SaveOutfit records an outfit in the caller's history. Item IDs must refer
// to wardrobe items the caller owns.
func (h *Handler) SaveOutfit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SaveOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	userID := currentUser(r)
	for _, itemID := range req.ItemIDs {
		if _, err := h.store.GetWardrobeItem(r.Context(), userID, itemID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				rw.BadRequest("Unknown wardrobe item: " + itemID)
				return
			}
			rw.StorageError(err)
			return
		}
	}

	outfit := store.OutfitRecord{
		UserID:     userID,
		Name:       req.Name,
		ItemIDs:    req.ItemIDs,
		Occasion:   req.Occasion,
		TotalScore: req.TotalScore,
		Confidence: req.Confidence,
	}
	if err := h.store.SaveOutfit(r.Context(), &outfit); err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("outfit_id", outfit.ID).
		Int("items", len(outfit.ItemIDs)).
		Msg("Outfit saved to history")
	rw.Created(outfit)
}

// DeleteOutfit removes one saved outfit from the caller's history.
func (h *Handler) DeleteOutfit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	err := h.store.DeleteOutfit(r.Context(), currentUser(r), chi.URLParam(r, "outfitID"))
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Outfit not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.NoContent()
}
