// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import "math"

// confidence computes a 0-100 percentage expressing how well a candidate
// matches the supplied preferences. Each supplied dimension contributes its
// weight scaled by the fraction of members satisfying it; unset dimensions
// contribute zero and the remaining weights are not renormalized, so a
// perfect outfit against a single supplied dimension still tops out at that
// dimension's weight.
func (e *Engine) confidence(c Candidate, prefs Preferences) int {
	n := len(c.Members)
	if n == 0 {
		return 0
	}

	var total float64

	if prefs.Weather != "" {
		matched := 0
		for _, m := range c.Members {
			if equalFold(m.Item.Weather, prefs.Weather) || weatherCompatible(m.Item.Weather, prefs.Weather) {
				matched++
			}
		}
		total += float64(matched) / float64(n) * float64(e.cfg.WeatherConfidenceWeight)
	}

	if prefs.Style != "" {
		matched := 0
		for _, m := range c.Members {
			if equalFold(m.Item.Style, prefs.Style) {
				matched++
			}
		}
		total += float64(matched) / float64(n) * float64(e.cfg.StyleConfidenceWeight)
	}

	if prefs.Occasion != "" {
		matched := 0
		for _, m := range c.Members {
			if containsFold(m.Item.Occasions, prefs.Occasion) {
				matched++
			}
		}
		total += float64(matched) / float64(n) * float64(e.cfg.OccasionConfidenceWeight)
	}

	result := int(math.Round(total))
	if result < 0 {
		result = 0
	}
	if result > 100 {
		result = 100
	}
	return result
}
