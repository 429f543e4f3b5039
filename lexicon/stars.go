// SPDX-License-Identifier: MIT

package lexicon

// StarType classifies a special star (신살).
type StarType uint8

const (
	StarAuspicious StarType = iota
	StarNeutral
	StarInauspicious
)

// String returns "auspicious", "neutral" or "inauspicious".
func (t StarType) String() string {
	switch t {
	case StarAuspicious:
		return "auspicious"
	case StarInauspicious:
		return "inauspicious"
	default:
		return "neutral"
	}
}

// Star names.
const (
	StarNobility     = "천을귀인"
	StarTravel       = "역마"
	StarPeachBlossom = "도화"
	StarCanopy       = "화개"
	StarYangBlade    = "양인"
)

// Star is one special star found on a chart position.
type Star struct {
	Name     string
	Type     StarType
	Position Position
	Branch   Branch
}

// triadStars holds (역마, 도화, 화개) per 삼합 triad, indexed like
// threeCombinations: 申子辰, 亥卯未, 寅午戌, 巳酉丑.
var triadStars = [4][3]Branch{
	{BranchIn, BranchYu, BranchJin},
	{BranchSa, BranchJa, BranchMi},
	{BranchSin, BranchMyo, BranchSul},
	{BranchHae, BranchO, BranchChuk},
}

func triadIndex(b Branch) int {
	for i, t := range threeCombinations {
		if t.Set().Has(b) {
			return i
		}
	}
	return 0
}

// TravelStar returns the 역마 branch for a base (year or day) branch.
func TravelStar(base Branch) Branch { return triadStars[triadIndex(base)][0] }

// PeachBlossom returns the 도화 branch for a base branch.
func PeachBlossom(base Branch) Branch { return triadStars[triadIndex(base)][1] }

// Canopy returns the 화개 branch for a base branch.
func Canopy(base Branch) Branch { return triadStars[triadIndex(base)][2] }

// YangBlade returns the 양인 branch of a yang day stem (the 제왕 position).
// ok is false for yin stems.
func YangBlade(s Stem) (Branch, bool) {
	if !s.Valid() || s.Polarity() != Yang {
		return 0, false
	}
	start := int(birthBranch[s])
	return Branch(wrap(start+int(StageJewang), NumBranches)), true
}

// SpecialStars lists the stars present on a chart. Nobility and yang blade
// are keyed on the day stem; travel, peach blossom and canopy are keyed on
// both the year and the day branch. The result is ordered by position, then
// by the order above, without duplicates.
func SpecialStars(fp FourPillars) []Star {
	var out []Star
	seen := make(map[Star]bool)
	add := func(st Star) {
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	blade, hasBlade := YangBlade(fp.Day.Stem)
	bases := [2]Branch{fp.Year.Branch, fp.Day.Branch}
	for pos := Position(0); pos < NumPositions; pos++ {
		b := fp.At(pos).Branch
		if !b.Valid() {
			continue
		}
		if IsNobility(fp.Day.Stem, b) {
			add(Star{Name: StarNobility, Type: StarAuspicious, Position: pos, Branch: b})
		}
		if hasBlade && b == blade {
			add(Star{Name: StarYangBlade, Type: StarInauspicious, Position: pos, Branch: b})
		}
		for _, base := range bases {
			if !base.Valid() {
				continue
			}
			if b == TravelStar(base) {
				add(Star{Name: StarTravel, Type: StarNeutral, Position: pos, Branch: b})
			}
			if b == PeachBlossom(base) {
				add(Star{Name: StarPeachBlossom, Type: StarNeutral, Position: pos, Branch: b})
			}
			if b == Canopy(base) {
				add(Star{Name: StarCanopy, Type: StarNeutral, Position: pos, Branch: b})
			}
		}
	}
	return out
}
