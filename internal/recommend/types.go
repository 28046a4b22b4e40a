// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import "context"

// Note: This package has no dependencies on other internal packages to keep
// the engine a pure, self-contained computation. The WardrobeProvider
// interface allows integration with the store package without creating
// circular imports.

// Role is a functional slot an outfit must fill.
type Role int

const (
	// RoleTop covers shirts, blouses, sweaters, jackets and similar.
	RoleTop Role = iota
	// RoleBottom covers jeans, trousers, skirts and similar.
	RoleBottom
	// RoleShoes covers all footwear.
	RoleShoes
	// RoleAccessory covers bags, jewelry, belts, hats and similar.
	RoleAccessory
)

// Roles lists every role in assembly order.
var Roles = []Role{RoleTop, RoleBottom, RoleShoes, RoleAccessory}

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleBottom:
		return "bottom"
	case RoleShoes:
		return "shoes"
	case RoleAccessory:
		return "accessory"
	default:
		return "unknown"
	}
}

// Item is a wardrobe item as seen by the engine. It mirrors the wardrobe
// store's record shape but carries only the fields scoring needs.
type Item struct {
	// ID is the opaque wardrobe item identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Category is the primary category label, free text (e.g. "T-shirt").
	Category string `json:"category"`

	// Categories is an ordered set of secondary category labels.
	Categories []string `json:"categories,omitempty"`

	// Weather is a single weather-suitability label (e.g. "Sunny"), optional.
	Weather string `json:"weather,omitempty"`

	// Style is a single style label (e.g. "Casual"), optional.
	Style string `json:"style,omitempty"`

	// Occasions is a set of occasion labels (e.g. "Work", "Party"), optional.
	Occasions []string `json:"occasions,omitempty"`
}

// ScoredItem is an Item annotated with its situational score.
// Never persisted; recomputed per request.
type ScoredItem struct {
	Item Item `json:"item"`

	// Score is the additive situational score (base plus boosts).
	Score int `json:"score"`
}

// OutfitMember is one item filling one role inside a candidate.
type OutfitMember struct {
	Item Item   `json:"item"`
	Role string `json:"role"`
}

// Candidate is a fully assembled outfit. Candidates are ephemeral: created
// by the assembler, annotated with confidence and returned to the caller.
// Saving one is the outfit history collaborator's concern, not the engine's.
type Candidate struct {
	// Members lists the outfit's items in role order: top, bottom, shoes,
	// then one or two accessories.
	Members []OutfitMember `json:"members"`

	// TotalScore is the arithmetic mean of member scores.
	TotalScore float64 `json:"total_score"`

	// Confidence is a 0-100 percentage expressing how well the candidate
	// matches the supplied preferences.
	Confidence int `json:"confidence"`
}

// Preferences are the situational inputs to a recommendation request.
// Any field may be empty; an empty dimension contributes no boost and no
// confidence weight.
type Preferences struct {
	Occasion string `json:"occasion,omitempty"`
	Weather  string `json:"weather,omitempty"`
	Style    string `json:"style,omitempty"`

	// Limit caps the number of candidates. The engine applies its own hard
	// cap on top of this; zero means "use the cap".
	Limit int `json:"limit,omitempty"`
}

// Response is the result of one recommendation request.
type Response struct {
	// Recommendations is the candidate list, sorted by TotalScore descending.
	Recommendations []Candidate `json:"recommendations"`

	// TotalItems is the number of wardrobe items considered.
	TotalItems int `json:"total_items"`

	// Message explains an empty result (empty wardrobe, nothing classified,
	// or pools too sparse to complete a look). Empty on success.
	Message string `json:"message,omitempty"`
}

// Categories are the distinct preference labels observed in a wardrobe,
// with fixed fallbacks when the wardrobe supplies none.
type Categories struct {
	Occasions []string `json:"occasions"`
	Weathers  []string `json:"weathers"`
	Styles    []string `json:"styles"`
}

// Outfit is a simple top/bottom pairing produced by the pairing variant.
type Outfit struct {
	Top      Item   `json:"top"`
	Bottom   Item   `json:"bottom"`
	Occasion string `json:"occasion"`
}

// WardrobeProvider supplies the wardrobe snapshot a recommendation request
// operates on. Implemented by the store layer.
type WardrobeProvider interface {
	// WardrobeItems returns every wardrobe item for the given user.
	WardrobeItems(ctx context.Context, userID string) ([]Item, error)
}

// RolePools holds the wardrobe partitioned into per-role, score-sorted pools.
type RolePools struct {
	Tops        []ScoredItem
	Bottoms     []ScoredItem
	Shoes       []ScoredItem
	Accessories []ScoredItem
}

// Pool returns the pool for a role.
func (p *RolePools) Pool(r Role) []ScoredItem {
	switch r {
	case RoleTop:
		return p.Tops
	case RoleBottom:
		return p.Bottoms
	case RoleShoes:
		return p.Shoes
	case RoleAccessory:
		return p.Accessories
	default:
		return nil
	}
}

// cycle returns the period after which modulo selection starts repeating
// whole candidates: the least common multiple of the non-empty pool sizes.
// Candidate indices beyond it select exactly the same item at every role,
// accessory offsets included.
func (p *RolePools) cycle() int {
	c := 1
	for _, n := range []int{len(p.Tops), len(p.Bottoms), len(p.Shoes), len(p.Accessories)} {
		if n > 0 {
			c = lcm(c, n)
		}
	}
	return c
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// Empty reports whether every pool is empty.
func (p *RolePools) Empty() bool {
	return len(p.Tops) == 0 && len(p.Bottoms) == 0 && len(p.Shoes) == 0 && len(p.Accessories) == 0
}
