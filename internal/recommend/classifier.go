// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import "strings"

// Role keyword sets. Classification is substring-based over the lowercased
// category labels: an item whose category (primary or secondary) contains a
// keyword joins that role's pool. An item may join multiple pools, and an
// item matching no keyword is excluded from assembly entirely.
var (
	topKeywords = []string{
		"t-shirt", "shirt", "blouse", "sweater", "jacket", "hoodie",
		"tops", "top",
	}

	bottomKeywords = []string{
		"jeans", "trousers", "shorts", "skirt", "leggings", "joggers",
		"bottoms", "bottom",
	}

	shoesKeywords = []string{
		"sneakers", "heels", "boots", "sandals", "flats", "loafers",
		"shoes", "shoe",
	}

	accessoryKeywords = []string{
		"bags", "jewelry", "belt", "scarf", "hat", "sunglasses",
		"accessories", "accessory", "umbrella",
	}
)

var roleKeywords = map[Role][]string{
	RoleTop:       topKeywords,
	RoleBottom:    bottomKeywords,
	RoleShoes:     shoesKeywords,
	RoleAccessory: accessoryKeywords,
}

// categoryLabels collects the primary category plus any secondary labels.
func categoryLabels(it Item) []string {
	labels := make([]string, 0, 1+len(it.Categories))
	if it.Category != "" {
		labels = append(labels, it.Category)
	}
	labels = append(labels, it.Categories...)
	return labels
}

// matchesRole reports whether any of the item's category labels contains a
// keyword for the role. Matching is case-insensitive substring containment,
// so "Shirts & Tops" matches the top role via both "shirt" and "top".
func matchesRole(it Item, role Role) bool {
	keywords := roleKeywords[role]
	for _, label := range categoryLabels(it) {
		lower := strings.ToLower(label)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// classify returns every role the item qualifies for. The returned slice is
// in canonical role order and may be empty for unclassifiable items.
func classify(it Item) []Role {
	var roles []Role
	for _, role := range Roles {
		if matchesRole(it, role) {
			roles = append(roles, role)
		}
	}
	return roles
}
