// SPDX-License-Identifier: MIT

package lexicon

// ---------- Heavenly stem pairs ----------

// ClashMode selects the heavenly-clash table.
type ClashMode uint8

const (
	// ClashMode4 uses the four classical pairs 甲庚, 乙辛, 丙壬, 丁癸.
	ClashMode4 ClashMode = iota
	// ClashMode5 additionally counts 戊壬.
	ClashMode5
)

// String returns "4" or "5".
func (m ClashMode) String() string {
	if m == ClashMode5 {
		return "5"
	}
	return "4"
}

// stemCombinationTransform holds the transform element for the five
// combinations 甲己 土, 乙庚 金, 丙辛 水, 丁壬 木, 戊癸 火. Partner is s±5.
var stemCombinationTransform = [NumStems / 2]Element{Earth, Metal, Water, Wood, Fire}

// StemCombinationPartner returns the stem that combines with s.
func StemCombinationPartner(s Stem) Stem { return (s%NumStems + 5) % NumStems }

// StemCombination reports whether a and b form a heavenly combination and,
// if so, the element they transform into.
func StemCombination(a, b Stem) (Element, bool) {
	if !a.Valid() || !b.Valid() || StemCombinationPartner(a) != b {
		return 0, false
	}
	lo := a
	if b < a {
		lo = b
	}
	return stemCombinationTransform[lo], true
}

// stemClashPairs lists the heavenly clashes; mode 4 uses the first four.
var stemClashPairs = [5][2]Stem{
	{StemGap, StemGyeong},
	{StemEul, StemSin},
	{StemByeong, StemIm},
	{StemJeong, StemGye},
	{StemMu, StemIm},
}

// StemClashPairs returns the pairs active under mode.
func StemClashPairs(mode ClashMode) [][2]Stem {
	n := 4
	if mode == ClashMode5 {
		n = 5
	}
	out := make([][2]Stem, n)
	copy(out, stemClashPairs[:n])
	return out
}

// StemClash reports whether a and b clash under the given mode.
// Mode 5 is a superset of mode 4.
func StemClash(a, b Stem, mode ClashMode) bool {
	for _, p := range StemClashPairs(mode) {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// ---------- Earthly branch pair families ----------

// PairFamily names one of the symmetric branch pair tables.
type PairFamily uint8

const (
	FamilySixCombination PairFamily = iota // 육합
	FamilyClash                            // 충
	FamilyBreak                            // 파
	FamilyHarm                             // 해
	FamilyResentment                       // 원진
)

// NumPairFamilies is the number of symmetric branch pair tables.
const NumPairFamilies = 5

var pairFamilyNames = [NumPairFamilies]string{"육합", "충", "파", "해", "원진"}

// String returns the Korean name of the family.
func (f PairFamily) String() string {
	if f >= NumPairFamilies {
		return "?"
	}
	return pairFamilyNames[f]
}

// branchPartners maps every branch to its partner in each family. Each
// family is a perfect matching over the twelve branches.
var branchPartners = [NumPairFamilies][NumBranches]Branch{
	// 육합: 子丑 寅亥 卯戌 辰酉 巳申 午未
	{BranchChuk, BranchJa, BranchHae, BranchSul, BranchYu, BranchSin, BranchMi, BranchO, BranchSa, BranchJin, BranchMyo, BranchIn},
	// 충: 子午 丑未 寅申 卯酉 辰戌 巳亥
	{BranchO, BranchMi, BranchSin, BranchYu, BranchSul, BranchHae, BranchJa, BranchChuk, BranchIn, BranchMyo, BranchJin, BranchSa},
	// 파: 子酉 丑辰 寅亥 卯午 巳申 未戌
	{BranchYu, BranchJin, BranchHae, BranchO, BranchChuk, BranchSin, BranchMyo, BranchSul, BranchSa, BranchJa, BranchMi, BranchIn},
	// 해: 子未 丑午 寅巳 卯辰 申亥 酉戌
	{BranchMi, BranchO, BranchSa, BranchJin, BranchMyo, BranchIn, BranchChuk, BranchJa, BranchHae, BranchSul, BranchYu, BranchSin},
	// 원진: 子未 丑午 寅酉 卯申 辰亥 巳戌
	{BranchMi, BranchO, BranchYu, BranchSin, BranchHae, BranchSul, BranchChuk, BranchJa, BranchMyo, BranchIn, BranchSa, BranchJin},
}

// sixCombinationTransform: 子丑 土, 寅亥 木, 卯戌 火, 辰酉 金, 巳申 水, 午未 火.
var sixCombinationTransform = [NumBranches]Element{
	Earth, Earth, Wood, Fire, Metal, Water, Fire, Fire, Water, Metal, Fire, Wood,
}

// BranchPartner returns the partner of b in family f.
func BranchPartner(f PairFamily, b Branch) Branch {
	return branchPartners[f%NumPairFamilies][b%NumBranches]
}

// IsBranchPair reports whether a and b are partners in family f.
func IsBranchPair(f PairFamily, a, b Branch) bool {
	if f >= NumPairFamilies || !a.Valid() || !b.Valid() {
		return false
	}
	return branchPartners[f][a] == b
}

// SixCombination reports whether a and b form a 육합 and its element.
func SixCombination(a, b Branch) (Element, bool) {
	if !IsBranchPair(FamilySixCombination, a, b) {
		return 0, false
	}
	return sixCombinationTransform[a], true
}

// ---------- Branch triads ----------

// Triad is a fixed set of three branches (삼합 or 삼형).
type Triad struct {
	Branches [3]Branch
	Element  Element
	Name     string
}

// Set returns the triad as a BranchSet.
func (t Triad) Set() BranchSet {
	return NewBranchSet(t.Branches[:]...)
}

var threeCombinations = [4]Triad{
	{Branches: [3]Branch{BranchSin, BranchJa, BranchJin}, Element: Water, Name: "申子辰"},
	{Branches: [3]Branch{BranchHae, BranchMyo, BranchMi}, Element: Wood, Name: "亥卯未"},
	{Branches: [3]Branch{BranchIn, BranchO, BranchSul}, Element: Fire, Name: "寅午戌"},
	{Branches: [3]Branch{BranchSa, BranchYu, BranchChuk}, Element: Metal, Name: "巳酉丑"},
}

var punishmentTriads = [2]Triad{
	{Branches: [3]Branch{BranchIn, BranchSa, BranchSin}, Element: Fire, Name: "寅巳申"},
	{Branches: [3]Branch{BranchChuk, BranchSul, BranchMi}, Element: Earth, Name: "丑戌未"},
}

// ThreeCombinations returns the four 삼합 triads (water, wood, fire, metal).
func ThreeCombinations() []Triad {
	out := threeCombinations
	return out[:]
}

// PunishmentTriads returns the two 삼형 triads 寅巳申 and 丑戌未.
func PunishmentTriads() []Triad {
	out := punishmentTriads
	return out[:]
}

// PunishmentPair returns the 子卯 무례지형 pair.
func PunishmentPair() [2]Branch { return [2]Branch{BranchJa, BranchMyo} }

// selfPunish is the 자형 set {辰, 午, 酉, 亥}.
var selfPunish = NewBranchSet(BranchJin, BranchO, BranchYu, BranchHae)

// IsSelfPunishing reports whether b punishes itself when repeated.
func IsSelfPunishing(b Branch) bool { return selfPunish.Has(b) }

// IsPunishment reports whether a and b punish each other: both in the same
// 삼형 triad, the 子卯 pair, or the same self-punishing branch.
func IsPunishment(a, b Branch) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	if a == b {
		return IsSelfPunishing(a)
	}
	pair := NewBranchSet(a, b)
	for _, t := range punishmentTriads {
		if t.Set().Intersect(pair) == pair {
			return true
		}
	}
	p := PunishmentPair()
	return pair == NewBranchSet(p[0], p[1])
}

// SameThreeCombination returns the 삼합 triad containing both a and b.
func SameThreeCombination(a, b Branch) (Triad, bool) {
	if a == b || !a.Valid() || !b.Valid() {
		return Triad{}, false
	}
	pair := NewBranchSet(a, b)
	for _, t := range threeCombinations {
		if t.Set().Intersect(pair) == pair {
			return t, true
		}
	}
	return Triad{}, false
}

// ---------- BranchSet ----------

// BranchSet is a bitset over the twelve branches.
type BranchSet uint16

// NewBranchSet builds a set from branches; out-of-range values are ignored.
func NewBranchSet(bs ...Branch) BranchSet {
	var s BranchSet
	for _, b := range bs {
		s = s.Add(b)
	}
	return s
}

// Add returns s ∪ {b}.
func (s BranchSet) Add(b Branch) BranchSet {
	if !b.Valid() {
		return s
	}
	return s | 1<<b
}

// Has reports whether b ∈ s.
func (s BranchSet) Has(b Branch) bool { return b.Valid() && s&(1<<b) != 0 }

// Intersect returns s ∩ o.
func (s BranchSet) Intersect(o BranchSet) BranchSet { return s & o }

// Len returns |s|.
func (s BranchSet) Len() int {
	n := 0
	for x := s; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Branches returns the members of s in branch order.
func (s BranchSet) Branches() []Branch {
	out := make([]Branch, 0, s.Len())
	for b := Branch(0); b < NumBranches; b++ {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	return out
}
