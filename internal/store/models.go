// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package store

import "time"

// WardrobeItem is a single item of clothing in a user's wardrobe.
type WardrobeItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Categories  []string  `json:"categories,omitempty"`
	Weather     string    `json:"weather,omitempty"`
	Style       string    `json:"style,omitempty"`
	Occasions   []string  `json:"occasions,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing status values.
const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
	ListingStatusClosed = "closed"
)

// Listing is a marketplace listing offering an item for sale.
type Listing struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Size        string    `json:"size,omitempty"`
	Condition   string    `json:"condition,omitempty"`
	Price       int64     `json:"price"` // smallest currency unit
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OutfitRecord is a saved outfit in a user's history: the item IDs that made
// up the look plus the engine annotations at save time.
type OutfitRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name,omitempty"`
	ItemIDs    []string  `json:"item_ids"`
	Occasion   string    `json:"occasion,omitempty"`
	TotalScore float64   `json:"total_score,omitempty"`
	Confidence int       `json:"confidence,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
