// SPDX-License-Identifier: MIT

package relations

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// slot is one pillar of the chart under analysis. pos is the index into the
// input; for FourPillars it equals the lexicon.Position.
type slot struct {
	pos    lexicon.Position
	stem   lexicon.Stem
	branch lexicon.Branch
}

// family binds a symmetric branch table to the hit kind it produces.
type family struct {
	table lexicon.PairFamily
	kind  Kind
}

var pairFamilies = [...]family{
	{lexicon.FamilySixCombination, KindSixCombination},
	{lexicon.FamilyClash, KindClash},
	{lexicon.FamilyBreak, KindBreak},
	{lexicon.FamilyHarm, KindHarm},
	{lexicon.FamilyResentment, KindResentment},
}

// Analyze returns every relation active among the four pillars of fp,
// sorted deterministically. Options default to DefaultOptions.
//
// Example:
//
//	hits := relations.Analyze(fp, relations.WithGongmang(false))
func Analyze(fp lexicon.FourPillars, opts ...Option) []Hit {
	return AnalyzeWithOptions(fp, gatherOptions(opts...))
}

// AnalyzeWithOptions is Analyze with an explicit Options value.
func AnalyzeWithOptions(fp lexicon.FourPillars, o Options) []Hit {
	slots := chartSlots(fp)

	// Every family is detected; the Include* toggles only filter output.
	heavenly := detectStems(slots, o)
	earthly := detectBranches(slots, o.IncludeSelfPunish)
	void := detectVoid(fp, o.GongmangPolicy)

	out := make([]Hit, 0, len(heavenly)+len(earthly)+len(void))
	if o.IncludeHeavenly {
		out = append(out, heavenly...)
	}
	if o.IncludeEarthly {
		out = append(out, earthly...)
	}
	if o.IncludeGongmang {
		out = append(out, void...)
	}
	sortHits(out)
	return out
}

// BranchInteractions reports the branch relations (combinations, clashes,
// punishments, breaks, harms and resentments) among an arbitrary list of
// branches. Self-punishment is included. Positions is nil on every hit.
func BranchInteractions(branches ...lexicon.Branch) []Hit {
	slots := make([]slot, len(branches))
	for i, b := range branches {
		slots[i] = slot{pos: lexicon.Position(i), branch: b}
	}
	hits := detectBranches(slots, true)
	sortHits(hits)
	for i := range hits {
		hits[i].Positions = nil
	}
	return hits
}

func chartSlots(fp lexicon.FourPillars) []slot {
	arr := fp.Array()
	slots := make([]slot, len(arr))
	for i, p := range arr {
		slots[i] = slot{pos: lexicon.Position(i), stem: p.Stem, branch: p.Branch}
	}
	return slots
}

// detectStems finds heavenly combinations and clashes across every stem pair.
func detectStems(slots []slot, o Options) []Hit {
	var hits []Hit
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			a, b := slots[i].stem, slots[j].stem
			lo, hi := a, b
			if hi < lo {
				lo, hi = hi, lo
			}
			pos := []lexicon.Position{slots[i].pos, slots[j].pos}
			detail := lo.String() + "-" + hi.String()

			if el, ok := lexicon.StemCombination(a, b); ok {
				h := Hit{
					Kind:      KindHeavenlyCombination,
					Positions: pos,
					Stems:     []lexicon.Stem{lo, hi},
					Detail:    detail,
				}
				if o.IncludeHeavenlyTransformNote {
					h.Detail = withTransform(detail, el)
					h.Transform = elementPtr(el)
				}
				hits = append(hits, h)
			}
			if lexicon.StemClash(a, b, o.HeavenlyClashMode) {
				hits = append(hits, Hit{
					Kind:      KindHeavenlyClash,
					Positions: slices.Clone(pos),
					Stems:     []lexicon.Stem{lo, hi},
					Detail:    detail,
				})
			}
		}
	}
	return hits
}

// detectBranches finds every branch family: the symmetric pair tables, the
// 子卯 punishment, triads on two or more distinct members, and self-punishment.
func detectBranches(slots []slot, selfPunish bool) []Hit {
	var hits []Hit
	jaMyo := lexicon.PunishmentPair()
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			a, b := slots[i].branch, slots[j].branch
			if a == b {
				continue
			}
			lo, hi := a, b
			if hi < lo {
				lo, hi = hi, lo
			}
			pair := func(k Kind) Hit {
				return Hit{
					Kind:      k,
					Positions: []lexicon.Position{slots[i].pos, slots[j].pos},
					Branches:  []lexicon.Branch{lo, hi},
					Detail:    lo.String() + "-" + hi.String(),
				}
			}
			for _, f := range pairFamilies {
				if !lexicon.IsBranchPair(f.table, a, b) {
					continue
				}
				h := pair(f.kind)
				if f.kind == KindSixCombination {
					el, _ := lexicon.SixCombination(a, b)
					h.Transform = elementPtr(el)
				}
				hits = append(hits, h)
			}
			if lo == jaMyo[0] && hi == jaMyo[1] {
				hits = append(hits, pair(KindPunishment))
			}
		}
	}

	for _, t := range lexicon.ThreeCombinations() {
		if h, ok := triadHit(KindThreeCombination, t, slots); ok {
			h.Transform = elementPtr(t.Element)
			hits = append(hits, h)
		}
	}
	for _, t := range lexicon.PunishmentTriads() {
		if h, ok := triadHit(KindPunishment, t, slots); ok {
			hits = append(hits, h)
		}
	}
	if selfPunish {
		hits = append(hits, selfPunishments(slots)...)
	}
	return hits
}

// triadHit matches t against the slots by set intersection. It fires when
// at least two distinct members are present.
func triadHit(k Kind, t lexicon.Triad, slots []slot) (Hit, bool) {
	var present lexicon.BranchSet
	var pos []lexicon.Position
	for _, s := range slots {
		if t.Set().Has(s.branch) {
			present = present.Add(s.branch)
			pos = append(pos, s.pos)
		}
	}
	if present.Len() < 2 {
		return Hit{}, false
	}

	members := make([]lexicon.Branch, 0, 3)
	names := make([]string, 0, 3)
	for _, b := range t.Branches {
		if present.Has(b) {
			members = append(members, b)
			names = append(names, b.String())
		}
	}
	h := Hit{
		Kind:      k,
		Positions: pos,
		Branches:  members,
		Detail:    strings.Join(names, "-"),
	}
	if len(members) < 3 {
		h.Partial = true
		h.Detail = fmt.Sprintf("%s (%s)", h.Detail, t.Name)
	}
	return h, true
}

// selfPunishments reports each self-punishing branch that occurs twice or more.
func selfPunishments(slots []slot) []Hit {
	var hits []Hit
	for b := lexicon.Branch(0); b < lexicon.NumBranches; b++ {
		if !lexicon.IsSelfPunishing(b) {
			continue
		}
		var pos []lexicon.Position
		for _, s := range slots {
			if s.branch == b {
				pos = append(pos, s.pos)
			}
		}
		if len(pos) < 2 {
			continue
		}
		hits = append(hits, Hit{
			Kind:      KindPunishment,
			Positions: pos,
			Branches:  []lexicon.Branch{b, b},
			Detail:    fmt.Sprintf("%s-%s (자형)", b, b),
		})
	}
	return hits
}

// detectVoid flags every pillar whose branch is void relative to the basis
// pillar(s) chosen by policy. A basis outside the sixty cycle flags nothing.
func detectVoid(fp lexicon.FourPillars, policy GongmangPolicy) []Hit {
	var bases []lexicon.Position
	switch policy {
	case GongmangDay:
		bases = []lexicon.Position{lexicon.PosDay}
	case GongmangYear:
		bases = []lexicon.Position{lexicon.PosYear}
	case GongmangDayAndYear:
		bases = []lexicon.Position{lexicon.PosDay, lexicon.PosYear}
	default:
		return nil
	}

	var hits []Hit
	for _, basis := range bases {
		bp := fp.At(basis)
		if _, ok := lexicon.CycleIndex(bp); !ok {
			continue
		}
		void := lexicon.VoidBranches(bp)
		for pos := lexicon.Position(0); pos < lexicon.NumPositions; pos++ {
			b := fp.At(pos).Branch
			if b != void[0] && b != void[1] {
				continue
			}
			hits = append(hits, Hit{
				Kind:      KindVoid,
				Positions: []lexicon.Position{pos},
				Branches:  []lexicon.Branch{b},
				Detail:    fmt.Sprintf("%s (%s %s)", b, basis, bp),
			})
		}
	}
	return hits
}

// sortHits orders by kind, then positions lexicographically, then detail.
func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		if c := slices.Compare(a.Positions, b.Positions); c != 0 {
			return c
		}
		return strings.Compare(a.Detail, b.Detail)
	})
}

func withTransform(detail string, el lexicon.Element) string {
	return detail + " → " + el.Hanja()
}

func elementPtr(el lexicon.Element) *lexicon.Element { return &el }
