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

// WardrobeItemRequest is the create/update request body for wardrobe items.
type WardrobeItemRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required,max=100"`
	Categories  []string `json:"categories" validate:"max=10,dive,max=100"`
	Weather     string   `json:"weather" validate:"max=50"`
	Style       string   `json:"style" validate:"max=50"`
	Occasions   []string `json:"occasions" validate:"max=10,dive,max=50"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
}

// decodeWardrobeItem parses and validates the request body. A nil return
// means the error response was already written.
func decodeWardrobeItem(rw *ResponseWriter, r *http.Request) *WardrobeItemRequest {
	var req WardrobeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid request body")
		return nil
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return nil
	}
	return &req
}

// applyWardrobeItem copies request fields onto a store record.
func (req *WardrobeItemRequest) apply(item *store.WardrobeItem) {
	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.Categories = req.Categories
	item.Weather = req.Weather
	item.Style = req.Style
	item.Occasions = req.Occasions
	item.ImageURL = req.ImageURL
}

// ListWardrobeItems returns the caller's full wardrobe.
func (h *Handler) ListWardrobeItems(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	items, err := h.store.ListWardrobeItems(r.Context(), currentUser(r))
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.SuccessWithMeta(items, &APIMeta{Count: len(items)})
}

// CreateWardrobeItem adds one item to the caller's wardrobe.
func (h *Handler) CreateWardrobeItem(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := decodeWardrobeItem(rw, r)
	if req == nil {
		return
	}

	item := store.WardrobeItem{UserID: currentUser(r)}
	req.apply(&item)

	if err := h.store.CreateWardrobeItem(r.Context(), &item); err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("item_id", item.ID).
		Str("category", item.Category).
		Msg("Wardrobe item created")
	rw.Created(item)
}

// GetWardrobeItem returns one of the caller's wardrobe items.
func (h *Handler) GetWardrobeItem(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	item, err := h.store.GetWardrobeItem(r.Context(), currentUser(r), chi.URLParam(r, "itemID"))
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Wardrobe item not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(item)
}

// UpdateWardrobeItem replaces one of the caller's wardrobe items.
func (h *Handler) UpdateWardrobeItem(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := decodeWardrobeItem(rw, r)
	if req == nil {
		return
	}

	item := store.WardrobeItem{
		ID:     chi.URLParam(r, "itemID"),
		UserID: currentUser(r),
	}
	req.apply(&item)

	err := h.store.UpdateWardrobeItem(r.Context(), &item)
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Wardrobe item not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(item)
}

// DeleteWardrobeItem removes one of the caller's wardrobe items.
func (h *Handler) DeleteWardrobeItem(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	err := h.store.DeleteWardrobeItem(r.Context(), currentUser(r), chi.URLParam(r, "itemID"))
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Wardrobe item not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.NoContent()
}
