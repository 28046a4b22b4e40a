// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package recommend

import "sort"

// assemble draws from the score-sorted role pools and builds up to n complete
// outfit candidates, where n = min(prefs.Limit, MaxCandidates). Selection is
// modulo-based: candidate i takes pool[i mod len(pool)] from each role, plus
// up to MaxAccessories accessories at offsets (i+j) mod len. Small pools are
// deliberately reused across candidates, and candidates sharing items are
// kept rather than deduplicated; only exact whole-candidate repeats past the
// enumeration cycle are cut off.
//
// Completeness rule: a candidate must fill all four roles or it is dropped
// entirely. Insufficient pools yield an empty result, which is a valid
// outcome rather than an error.
func (e *Engine) assemble(pools *RolePools, prefs Preferences) []Candidate {
	n := prefs.Limit
	if n <= 0 || n > e.cfg.MaxCandidates {
		n = e.cfg.MaxCandidates
	}
	// Selection repeats whole candidates verbatim once every pool index has
	// wrapped in step, so generating past the cycle adds only exact copies.
	// Unequal pool sizes keep producing new combinations until then: with 2
	// tops and 3 bottoms the pairs cycle with period 6.
	if cycle := pools.cycle(); n > cycle {
		n = cycle
	}

	var candidates []Candidate
	for i := 0; i < n; i++ {
		var members []ScoredItem
		var roles []string

		if len(pools.Tops) > 0 {
			members = append(members, pools.Tops[i%len(pools.Tops)])
			roles = append(roles, RoleTop.String())
		}
		if len(pools.Bottoms) > 0 {
			members = append(members, pools.Bottoms[i%len(pools.Bottoms)])
			roles = append(roles, RoleBottom.String())
		}
		if len(pools.Shoes) > 0 {
			members = append(members, pools.Shoes[i%len(pools.Shoes)])
			roles = append(roles, RoleShoes.String())
		}

		accessories := 0
		if len(pools.Accessories) > 0 {
			limit := e.cfg.MaxAccessories
			if limit > len(pools.Accessories) {
				limit = len(pools.Accessories)
			}
			for j := 0; j < limit; j++ {
				members = append(members, pools.Accessories[(i+j)%len(pools.Accessories)])
				roles = append(roles, RoleAccessory.String())
				accessories++
			}
		}

		// A complete look needs a top, a bottom, shoes and at least one
		// accessory. Partial outfits are dropped, not padded.
		if len(members)-accessories != 3 || accessories == 0 {
			continue
		}

		total := 0
		outfit := make([]OutfitMember, len(members))
		for k, m := range members {
			total += m.Score
			outfit[k] = OutfitMember{Item: m.Item, Role: roles[k]}
		}

		candidates = append(candidates, Candidate{
			Members:    outfit,
			TotalScore: float64(total) / float64(len(members)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})
	return candidates
}
