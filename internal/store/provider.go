// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package store

import (
	"context"
	"fmt"

	"github.com/vestra-app/vestra/internal/recommend"
)

// WardrobeItems implements recommend.WardrobeProvider, projecting stored
// wardrobe records into the engine's item shape.
func (s *Store) WardrobeItems(ctx context.Context, userID string) ([]recommend.Item, error) {
	records, err := s.ListWardrobeItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing wardrobe: %w", err)
	}

	items := make([]recommend.Item, len(records))
	for i, rec := range records {
		items[i] = recommend.Item{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Category:    rec.Category,
			Categories:  rec.Categories,
			Weather:     rec.Weather,
			Style:       rec.Style,
			Occasions:   rec.Occasions,
		}
	}
	return items, nil
}
