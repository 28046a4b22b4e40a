// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

// pairingCap bounds the number of outfits the pairing variant enumerates.
const pairingCap = 10

// occasionFormals is the category label that upgrades a pairing's occasion.
const occasionFormals = "Formals"

// matchesCategory reports whether the item belongs to the given category by
// exact, case-sensitive comparison against the primary category or any
// secondary label. Unlike the scored engine's keyword classifier, the
// pairing variant trusts the caller to supply an exact category name.
func matchesCategory(it Item, category string) bool {
	if it.Category == category {
		return true
	}
	for _, c := range it.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// passesWeather reports whether the item survives the optional weather
// filter. Items with no weather value always pass; an item is never excluded
// for lacking weather data.
func passesWeather(it Item, weather string) bool {
	return weather == "" || it.Weather == "" || it.Weather == weather
}

// pairingPools fills the engine's top and bottom role pools using exact
// category selection in place of the keyword classifier, with scoring
// skipped. The pairing variant is a degenerate configuration of the full
// pipeline: the same pool structures, zero scores, and cross-product
// enumeration instead of modulo assembly.
func pairingPools(wardrobe []Item, topCategory, bottomCategory, weather string) *RolePools {
	pools := &RolePools{}
	for _, it := range wardrobe {
		if !passesWeather(it, weather) {
			continue
		}
		if matchesCategory(it, topCategory) {
			pools.Tops = append(pools.Tops, ScoredItem{Item: it})
		}
		if matchesCategory(it, bottomCategory) {
			pools.Bottoms = append(pools.Bottoms, ScoredItem{Item: it})
		}
	}
	return pools
}

// PairItems enumerates simple top/bottom pairings: every item matching
// topCategory crossed with every item matching bottomCategory, optionally
// filtered by an exact weather value, capped at ten outfits. Output order is
// enumeration order over the input, with no scoring or ranking applied. An
// item qualifying for both pools is never paired with itself. The occasion
// label is heuristic: "Work/Formal" when either member's primary category is
// "Formals", otherwise "Casual".
func PairItems(wardrobe []Item, topCategory, bottomCategory, weather string) []Outfit {
	pools := pairingPools(wardrobe, topCategory, bottomCategory, weather)

	var outfits []Outfit
	for _, top := range pools.Tops {
		for _, bottom := range pools.Bottoms {
			if len(outfits) >= pairingCap {
				return outfits
			}
			if top.Item.ID != "" && top.Item.ID == bottom.Item.ID {
				continue
			}
			occasion := "Casual"
			if top.Item.Category == occasionFormals || bottom.Item.Category == occasionFormals {
				occasion = "Work/Formal"
			}
			outfits = append(outfits, Outfit{Top: top.Item, Bottom: bottom.Item, Occasion: occasion})
		}
	}
	return outfits
}
