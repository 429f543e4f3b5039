// SPDX-License-Identifier: MIT

package lexicon

// CycleLength is the length of the sexagenary (육십갑자) cycle.
const CycleLength = 60

// CycleAt returns the pillar at index i of the sixty cycle. Any integer is
// accepted and wrapped: CycleAt(60) == CycleAt(0), CycleAt(-1) == CycleAt(59).
func CycleAt(i int) Pillar {
	i = wrap(i, CycleLength)
	return Pillar{Stem: Stem(i % NumStems), Branch: Branch(i % NumBranches)}
}

// CycleIndex returns the 0..59 position of p in the sixty cycle.
// ok is false when p is out of range or pairs a yin stem with a yang
// branch (or vice versa), since such pairs are not part of the cycle.
//
// The index solves i ≡ stem (mod 10), i ≡ branch (mod 12), which reduces
// to i = 6·stem − 5·branch (mod 60).
func CycleIndex(p Pillar) (int, bool) {
	if !p.Valid() || p.Stem.Polarity() != p.Branch.Polarity() {
		return 0, false
	}
	return wrap(6*int(p.Stem)-5*int(p.Branch), CycleLength), true
}

// VoidBranches returns the two 공망 branches of p's decad (순).
// A decad starts at a 甲 pillar and covers ten branches; the two branches it
// skips are void. For 甲子 the result is {戌, 亥}. Pillars outside the cycle
// fall back to the decad of CycleAt(0).
func VoidBranches(p Pillar) [2]Branch {
	idx, _ := CycleIndex(p)
	start := idx - idx%NumStems
	first := Branch(wrap(start+10, NumBranches))
	second := Branch(wrap(start+11, NumBranches))
	return [2]Branch{first, second}
}

// IsVoid reports whether b is a void branch relative to basis.
func IsVoid(basis Pillar, b Branch) bool {
	v := VoidBranches(basis)
	return v[0] == b || v[1] == b
}

// wrap returns i mod n in the range [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
