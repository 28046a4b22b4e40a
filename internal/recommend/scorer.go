// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import (
	"sort"
	"strings"
)

// weatherCompat maps an item's tagged weather to the set of target weathers
// it is considered seasonally adjacent to. The mapping is directional: an
// item tagged "sunny" earns partial credit when "warm" is requested, but not
// the other way around ("warm" items list both "sunny" and "cloudy").
// Lookups are lowercased on both sides.
var weatherCompat = map[string][]string{
	"cold":   {"cloudy", "rainy"},
	"warm":   {"sunny", "cloudy"},
	"sunny":  {"warm"},
	"rainy":  {"cold", "cloudy"},
	"cloudy": {"cold", "warm", "rainy"},
}

// weatherCompatible reports whether target is in the compatibility set for
// the item's tagged weather. Exact matches are handled separately and score
// higher; this only covers near-matches.
func weatherCompatible(itemWeather, target string) bool {
	for _, w := range weatherCompat[strings.ToLower(itemWeather)] {
		if w == strings.ToLower(target) {
			return true
		}
	}
	return false
}

// equalFold reports case-insensitive equality treating empty strings as
// never matching. Preference values originate from free-form upstream data,
// so an unset dimension must contribute nothing rather than match everything.
func equalFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// containsFold reports whether set contains val case-insensitively.
func containsFold(set []string, val string) bool {
	for _, s := range set {
		if equalFold(s, val) {
			return true
		}
	}
	return false
}

// score computes the situational score for one item: a flat base plus
// independent, cumulative boosts per matching preference dimension. Pure
// function; unrecognized or unset preference values silently contribute
// nothing. The result has no upper cap.
func (e *Engine) score(it Item, prefs Preferences) int {
	s := e.cfg.BaseScore

	if prefs.Weather != "" {
		switch {
		case equalFold(it.Weather, prefs.Weather):
			s += e.cfg.WeatherExactBoost
		case weatherCompatible(it.Weather, prefs.Weather):
			s += e.cfg.WeatherCompatBoost
		}
	}

	if prefs.Occasion != "" && containsFold(it.Occasions, prefs.Occasion) {
		s += e.cfg.OccasionBoost
	}

	if prefs.Style != "" && equalFold(it.Style, prefs.Style) {
		s += e.cfg.StyleBoost
	}

	return s
}

// buildPools scores every item and partitions the wardrobe into per-role
// pools. An item classified into multiple roles joins every matching pool;
// an item matching no role keywords is silently excluded. Each pool is
// sorted descending by score with input order preserved among ties.
func (e *Engine) buildPools(items []Item, prefs Preferences) *RolePools {
	pools := &RolePools{}
	for _, it := range items {
		roles := classify(it)
		if len(roles) == 0 {
			continue
		}
		scored := ScoredItem{Item: it, Score: e.score(it, prefs)}
		for _, role := range roles {
			switch role {
			case RoleTop:
				pools.Tops = append(pools.Tops, scored)
			case RoleBottom:
				pools.Bottoms = append(pools.Bottoms, scored)
			case RoleShoes:
				pools.Shoes = append(pools.Shoes, scored)
			case RoleAccessory:
				pools.Accessories = append(pools.Accessories, scored)
			}
		}
	}

	for _, pool := range [][]ScoredItem{pools.Tops, pools.Bottoms, pools.Shoes, pools.Accessories} {
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Score > pool[j].Score
		})
	}
	return pools
}
