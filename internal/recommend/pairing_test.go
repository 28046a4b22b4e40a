// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import (
	"fmt"
	"testing"
)

func TestPairItemsCrossProduct(t *testing.T) {
	tests := []struct {
		name    string
		tops    int
		bottoms int
		want    int
	}{
		{"2x3", 2, 3, 6},
		{"1x1", 1, 1, 1},
		{"capped at ten", 4, 5, 10},
		{"no tops", 0, 3, 0},
		{"no bottoms", 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wardrobe []Item
			for i := 0; i < tt.tops; i++ {
				wardrobe = append(wardrobe, Item{ID: fmt.Sprintf("t%d", i), Category: "T-shirt"})
			}
			for i := 0; i < tt.bottoms; i++ {
				wardrobe = append(wardrobe, Item{ID: fmt.Sprintf("b%d", i), Category: "Jeans"})
			}
			got := PairItems(wardrobe, "T-shirt", "Jeans", "")
			if len(got) != tt.want {
				t.Errorf("PairItems() returned %d outfits, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPairItemsCategoryMatchingIsExact(t *testing.T) {
	wardrobe := []Item{
		{ID: "1", Category: "T-shirt"},
		{ID: "2", Category: "t-shirt"}, // case differs, must not match
		{ID: "3", Category: "Casual", Categories: []string{"T-shirt"}},
		{ID: "4", Category: "Jeans"},
	}
	got := PairItems(wardrobe, "T-shirt", "Jeans", "")
	// Items 1 and 3 qualify as tops, item 4 as the only bottom.
	if len(got) != 2 {
		t.Fatalf("PairItems() returned %d outfits, want 2", len(got))
	}
	for _, o := range got {
		if o.Top.ID == "2" {
			t.Error("case-insensitive category matched; pairing must be exact")
		}
	}
}

func TestPairItemsWeatherFilter(t *testing.T) {
	t.Run("unset weather passes the filter", func(t *testing.T) {
		// Item 1 has no weather and passes, item 2 matches exactly,
		// item 3 is filtered out.
		wardrobe := []Item{
			{ID: "1", Category: "T-shirt"},
			{ID: "2", Category: "T-shirt", Weather: "Rainy"},
			{ID: "3", Category: "T-shirt", Weather: "Sunny"},
			{ID: "4", Category: "Jeans"},
		}
		got := PairItems(wardrobe, "T-shirt", "Jeans", "Rainy")
		if len(got) != 2 {
			t.Errorf("PairItems() returned %d outfits, want 2", len(got))
		}
	})

	t.Run("all items mismatched yields zero outfits", func(t *testing.T) {
		wardrobe := []Item{
			{ID: "1", Category: "T-shirt", Weather: "Sunny"},
			{ID: "2", Category: "Jeans", Weather: "Warm"},
		}
		if got := PairItems(wardrobe, "T-shirt", "Jeans", "Rainy"); len(got) != 0 {
			t.Errorf("PairItems() returned %d outfits, want 0", len(got))
		}
	})
}

func TestPairItemsOccasionHeuristic(t *testing.T) {
	wardrobe := []Item{
		{ID: "1", Category: "Formals", Categories: []string{"Shirt"}},
		{ID: "2", Category: "T-shirt"},
		{ID: "3", Category: "Jeans"},
	}

	formal := PairItems(wardrobe, "Shirt", "Jeans", "")
	if len(formal) != 1 || formal[0].Occasion != "Work/Formal" {
		t.Errorf("formal pairing = %+v, want occasion Work/Formal", formal)
	}

	casual := PairItems(wardrobe, "T-shirt", "Jeans", "")
	if len(casual) != 1 || casual[0].Occasion != "Casual" {
		t.Errorf("casual pairing = %+v, want occasion Casual", casual)
	}
}

func TestPairItemsNeverPairsItemWithItself(t *testing.T) {
	wardrobe := []Item{
		{ID: "j1", Category: "Jeans"},
		{ID: "j2", Category: "Jeans"},
	}

	// Same category on both sides: each item lands in both pools.
	got := PairItems(wardrobe, "Jeans", "Jeans", "")
	if len(got) != 2 {
		t.Fatalf("PairItems() returned %d outfits, want 2", len(got))
	}
	for _, o := range got {
		if o.Top.ID == o.Bottom.ID {
			t.Errorf("outfit pairs item %s with itself", o.Top.ID)
		}
	}

	// A single dual-labelled item has nothing to pair with.
	dual := []Item{{ID: "d1", Category: "Shirt", Categories: []string{"Jeans"}}}
	if got := PairItems(dual, "Shirt", "Jeans", ""); len(got) != 0 {
		t.Errorf("PairItems() returned %d outfits for a lone dual-labelled item, want 0", len(got))
	}
}

func TestPairItemsPreservesInputOrder(t *testing.T) {
	wardrobe := []Item{
		{ID: "t1", Category: "T-shirt"},
		{ID: "t2", Category: "T-shirt"},
		{ID: "b1", Category: "Jeans"},
		{ID: "b2", Category: "Jeans"},
	}
	got := PairItems(wardrobe, "T-shirt", "Jeans", "")
	wantPairs := [][2]string{{"t1", "b1"}, {"t1", "b2"}, {"t2", "b1"}, {"t2", "b2"}}
	if len(got) != len(wantPairs) {
		t.Fatalf("PairItems() returned %d outfits, want %d", len(got), len(wantPairs))
	}
	for i, o := range got {
		if o.Top.ID != wantPairs[i][0] || o.Bottom.ID != wantPairs[i][1] {
			t.Errorf("outfit %d = (%s, %s), want (%s, %s)",
				i, o.Top.ID, o.Bottom.ID, wantPairs[i][0], wantPairs[i][1])
		}
	}
}
