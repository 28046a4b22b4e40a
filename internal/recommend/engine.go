// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

// Package recommend implements the outfit recommendation engine: a
// deterministic, rule-based pipeline that classifies wardrobe items into
// functional roles, scores them against situational preferences, assembles
// complete outfit candidates and annotates each with a confidence
// percentage. The engine is a pure computation over an in-memory wardrobe
// snapshot; it holds no shared state and every invocation is independent.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vestra-app/vestra/internal/logging"
)

// Fallback label sets returned by Categories when the wardrobe supplies none.
var (
	fallbackOccasions = []string{"Casual", "Work", "Party", "Sports", "Formal"}
	fallbackWeathers  = []string{"Sunny", "Rainy", "Cold", "Warm", "Cloudy"}
	fallbackStyles    = []string{"Casual", "Formal", "Sporty", "Vintage", "Minimalist"}
)

// Messages returned with an empty recommendation list. An empty result is a
// normal outcome the caller displays, not an error.
const (
	msgEmptyWardrobe   = "Your wardrobe is empty. Add some items to get outfit recommendations."
	msgNoClassified    = "None of your wardrobe items could be matched to an outfit role. Try adding category tags like Shirt, Jeans, Shoes or Accessories."
	msgIncompletePools = "Not enough variety to build a complete outfit. A full look needs a top, a bottom, shoes and at least one accessory."
)

// Engine runs the recommendation pipeline.
type Engine struct {
	cfg      Config
	provider WardrobeProvider
}

// New creates an Engine backed by the given wardrobe provider.
func New(cfg Config, provider WardrobeProvider) *Engine {
	return &Engine{cfg: cfg, provider: provider}
}

// Recommend fetches the caller's wardrobe and runs the full pipeline:
// classify, score, assemble, annotate with confidence. Provider failures are
// propagated unchanged; empty or unclassifiable wardrobes yield an empty
// list with an explanatory message.
func (e *Engine) Recommend(ctx context.Context, userID string, prefs Preferences) (*Response, error) {
	items, err := e.provider.WardrobeItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching wardrobe: %w", err)
	}

	resp := &Response{Recommendations: []Candidate{}, TotalItems: len(items)}
	if len(items) == 0 {
		resp.Message = msgEmptyWardrobe
		return resp, nil
	}

	pools := e.buildPools(items, prefs)
	if pools.Empty() {
		resp.Message = msgNoClassified
		return resp, nil
	}

	candidates := e.assemble(pools, prefs)
	if len(candidates) == 0 {
		resp.Message = msgIncompletePools
		return resp, nil
	}

	for i := range candidates {
		candidates[i].Confidence = e.confidence(candidates[i], prefs)
	}
	resp.Recommendations = candidates

	logging.Ctx(ctx).Debug().
		Str("component", "recommend").
		Int("total_items", len(items)).
		Int("candidates", len(candidates)).
		Int("tops", len(pools.Tops)).
		Int("bottoms", len(pools.Bottoms)).
		Int("shoes", len(pools.Shoes)).
		Int("accessories", len(pools.Accessories)).
		Msg("Assembled outfit recommendations")

	return resp, nil
}

// Categories returns the distinct occasion, weather and style labels
// observed in the caller's wardrobe. Each dimension falls back to a fixed
// default list when the wardrobe supplies no values for it, so the caller
// always has something to offer in a preference picker.
func (e *Engine) Categories(ctx context.Context, userID string) (*Categories, error) {
	items, err := e.provider.WardrobeItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching wardrobe: %w", err)
	}

	occasions := make(map[string]string)
	weathers := make(map[string]string)
	styles := make(map[string]string)
	for _, it := range items {
		for _, o := range it.Occasions {
			addLabel(occasions, o)
		}
		addLabel(weathers, it.Weather)
		addLabel(styles, it.Style)
	}

	return &Categories{
		Occasions: labelsOrFallback(occasions, fallbackOccasions),
		Weathers:  labelsOrFallback(weathers, fallbackWeathers),
		Styles:    labelsOrFallback(styles, fallbackStyles),
	}, nil
}

// addLabel records a label keyed by its lowercase form so that case variants
// collapse to the first spelling observed.
func addLabel(set map[string]string, label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	key := strings.ToLower(label)
	if _, ok := set[key]; !ok {
		set[key] = label
	}
}

// labelsOrFallback returns the observed labels sorted alphabetically, or the
// fallback list when none were observed.
func labelsOrFallback(set map[string]string, fallback []string) []string {
	if len(set) == 0 {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	out := make([]string, 0, len(set))
	for _, label := range set {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}
