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

// ListingRequest is the create/update request body for marketplace listings.
type ListingRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"required,max=100"`
	Size        string `json:"size" validate:"max=20"`
	Condition   string `json:"condition" validate:"omitempty,oneof=new like_new good fair worn"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Status      string `json:"status" validate:"omitempty,oneof=active sold closed"`
	ImageURL    string `json:"image_url" validate:"omitempty,url,max=500"`
}

func decodeListing(rw *ResponseWriter, r *http.Request) *ListingRequest {
	var req ListingRequest
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

func (req *ListingRequest) apply(listing *store.Listing) {
	listing.Title = req.Title
	listing.Description = req.Description
	listing.Category = req.Category
	listing.Size = req.Size
	listing.Condition = req.Condition
	listing.Price = req.Price
	listing.Currency = req.Currency
	listing.Status = req.Status
	listing.ImageURL = req.ImageURL
}

// ListListings returns marketplace listings, optionally filtered by the
// status query parameter.
func (h *Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := r.URL.Query().Get("status")
	switch status {
	case "", store.ListingStatusActive, store.ListingStatusSold, store.ListingStatusClosed:
	default:
		rw.BadRequest("Unknown listing status: " + status)
		return
	}

	listings, err := h.store.ListListings(r.Context(), status)
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.SuccessWithMeta(listings, &APIMeta{Count: len(listings)})
}

// CreateListing publishes a new marketplace listing for the caller.
func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := decodeListing(rw, r)
	if req == nil {
		return
	}

	listing := store.Listing{SellerID: currentUser(r)}
	req.apply(&listing)

	if err := h.store.CreateListing(r.Context(), &listing); err != nil {
		rw.StorageError(err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("listing_id", listing.ID).
		Str("category", listing.Category).
		Int64("price", listing.Price).
		Msg("Listing created")
	rw.Created(listing)
}

// GetListing returns one listing by ID. Listings are public to every
// authenticated user.
func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	listing, err := h.store.GetListing(r.Context(), chi.URLParam(r, "listingID"))
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Listing not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(listing)
}

// UpdateListing replaces a listing the caller owns.
func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := decodeListing(rw, r)
	if req == nil {
		return
	}

	listing := store.Listing{
		ID:       chi.URLParam(r, "listingID"),
		SellerID: currentUser(r),
	}
	req.apply(&listing)

	err := h.store.UpdateListing(r.Context(), &listing)
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Listing not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.Success(listing)
}

// DeleteListing removes a listing the caller owns.
func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	err := h.store.DeleteListing(r.Context(), currentUser(r), chi.URLParam(r, "listingID"))
	if errors.Is(err, store.ErrNotFound) {
		rw.NotFound("Listing not found")
		return
	}
	if err != nil {
		rw.StorageError(err)
		return
	}
	rw.NoContent()
}
