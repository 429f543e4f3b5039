// SPDX-License-Identifier: MIT

package window

import (
	"math"
	"slices"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
)

// delta is one event-condition contribution to a day.
type delta struct {
	key   string
	value int
}

// eventDeltas applies the event table to a day pillar: the day's stem and
// branch elements, the stem's role for the day master, the day's relations
// with the natal day pillar and the stars the day branch carries.
func eventDeltas(c Conditions, p profile.Profile, day lexicon.Pillar) []delta {
	var out []delta
	add := func(key string, v int, ok bool) {
		if ok && v != 0 {
			out = append(out, delta{key: key, value: v})
		}
	}

	for _, el := range []lexicon.Element{day.Stem.Element(), day.Branch.Element()} {
		if !el.Valid() {
			continue
		}
		v, ok := c.Elements[el]
		add(el.Korean()+"기운", v, ok)
	}

	if day.Stem.Valid() && p.DayMaster.Valid() {
		role := lexicon.SibsinOf(p.DayMaster, day.Stem)
		v, ok := c.Sibsin[role]
		add(role.String(), v, ok)
	}

	for _, k := range natalRelations(p, day) {
		v, ok := c.Relations[k.Category()]
		add(k.Korean(), v, ok)
	}

	for _, star := range dayStars(p, day.Branch) {
		v, ok := c.Stars[star]
		add(star, v, ok)
	}
	return out
}

// natalRelations lists the relation kinds between the day pillar and the
// natal day pillar, each kind once, in kind order.
func natalRelations(p profile.Profile, day lexicon.Pillar) []relations.Kind {
	var kinds []relations.Kind
	seen := make(map[relations.Kind]bool)
	push := func(k relations.Kind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	if _, ok := lexicon.StemCombination(p.DayMaster, day.Stem); ok {
		push(relations.KindHeavenlyCombination)
	}
	if lexicon.StemClash(p.DayMaster, day.Stem, lexicon.ClashMode4) {
		push(relations.KindHeavenlyClash)
	}
	for _, h := range relations.BranchInteractions(p.DayBranch, day.Branch) {
		push(h.Kind)
	}
	if p.DayMaster.Valid() && p.DayBranch.Valid() && lexicon.IsVoid(p.DayPillar(), day.Branch) {
		push(relations.KindVoid)
	}
	slices.Sort(kinds)
	return kinds
}

// dayStars lists the special stars a day branch carries for the profile.
func dayStars(p profile.Profile, b lexicon.Branch) []string {
	if !b.Valid() {
		return nil
	}
	var out []string
	if p.DayMaster.Valid() && lexicon.IsNobility(p.DayMaster, b) {
		out = append(out, lexicon.StarNobility)
	}
	if p.DayBranch.Valid() {
		if b == lexicon.TravelStar(p.DayBranch) {
			out = append(out, lexicon.StarTravel)
		}
		if b == lexicon.PeachBlossom(p.DayBranch) {
			out = append(out, lexicon.StarPeachBlossom)
		}
		if b == lexicon.Canopy(p.DayBranch) {
			out = append(out, lexicon.StarCanopy)
		}
	}
	if blade, ok := lexicon.YangBlade(p.DayMaster); ok && b == blade {
		out = append(out, lexicon.StarYangBlade)
	}
	return out
}

// blend combines the horizon scores with the event weights, then adds the
// event deltas and the astrology bonus. The result is clamped.
func blend(c Conditions, r profile.Result, deltas []delta, bonus float64) int {
	var sum, total float64
	for h := profile.Horizon(0); h < profile.NumHorizons; h++ {
		w := c.Weights[h]
		if w <= 0 {
			continue
		}
		sum += w * float64(r.Get(h).Score)
		total += w
	}
	score := sum / total
	for _, d := range deltas {
		score += float64(d.value)
	}
	score += bonus
	return profile.Clamp(int(math.Round(score)))
}

// dayReasons merges the event keys with the horizon factor keys, heaviest
// horizon first.
func dayReasons(c Conditions, r profile.Result, deltas []delta) []string {
	var out []string
	push := func(k string) {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	for _, d := range deltas {
		if d.value > 0 {
			push(d.key)
		}
	}
	horizons := make([]profile.Horizon, 0, profile.NumHorizons)
	for h := profile.Horizon(0); h < profile.NumHorizons; h++ {
		if c.Weights[h] > 0 {
			horizons = append(horizons, h)
		}
	}
	slices.SortStableFunc(horizons, func(a, b profile.Horizon) int {
		switch {
		case c.Weights[a] > c.Weights[b]:
			return -1
		case c.Weights[a] < c.Weights[b]:
			return 1
		}
		return 0
	})
	for _, h := range horizons {
		for _, k := range r.Get(h).FactorKeys {
			push(k)
		}
	}
	for _, d := range deltas {
		if d.value < 0 {
			push(d.key)
		}
	}
	return out
}
