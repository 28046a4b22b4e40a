// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

// Config holds the engine's scoring and assembly parameters. The zero value
// is not usable; start from DefaultConfig and override selectively.
type Config struct {
	// BaseScore is awarded to every item before boosts.
	BaseScore int

	// WeatherExactBoost is added on an exact weather match.
	WeatherExactBoost int

	// WeatherCompatBoost is added on a compatibility-table near-match.
	// Must not exceed WeatherExactBoost.
	WeatherCompatBoost int

	// OccasionBoost is added when the requested occasion appears in the
	// item's occasion set.
	OccasionBoost int

	// StyleBoost is added on an exact style match.
	StyleBoost int

	// MaxCandidates is the hard cap on assembled candidates per request.
	MaxCandidates int

	// MaxAccessories is the maximum accessories per candidate.
	MaxAccessories int

	// WeatherConfidenceWeight, StyleConfidenceWeight and
	// OccasionConfidenceWeight apportion the 100-point confidence scale
	// across the three preference dimensions.
	WeatherConfidenceWeight  int
	StyleConfidenceWeight    int
	OccasionConfidenceWeight int
}

// DefaultConfig returns the production scoring parameters.
func DefaultConfig() Config {
	return Config{
		BaseScore:                10,
		WeatherExactBoost:        25,
		WeatherCompatBoost:       15,
		OccasionBoost:            20,
		StyleBoost:               15,
		MaxCandidates:            10,
		MaxAccessories:           2,
		WeatherConfidenceWeight:  40,
		StyleConfidenceWeight:    30,
		OccasionConfidenceWeight: 30,
	}
}
