// SPDX-License-Identifier: MIT

package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// TestStem_ElementAndPolarity checks that every stem has exactly one element
// and polarity, paired two-by-two through the five phases.
func TestStem_ElementAndPolarity(t *testing.T) {
	want := []lexicon.Element{
		lexicon.Wood, lexicon.Wood, lexicon.Fire, lexicon.Fire, lexicon.Earth,
		lexicon.Earth, lexicon.Metal, lexicon.Metal, lexicon.Water, lexicon.Water,
	}
	for s := lexicon.Stem(0); s < lexicon.NumStems; s++ {
		assert.Equal(t, want[s], s.Element(), "element of %s", s)
		wantPol := lexicon.Yang
		if s%2 == 1 {
			wantPol = lexicon.Yin
		}
		assert.Equal(t, wantPol, s.Polarity(), "polarity of %s", s)
	}
}

// TestBranch_Element spot-checks the branch element table.
func TestBranch_Element(t *testing.T) {
	cases := map[lexicon.Branch]lexicon.Element{
		lexicon.BranchJa:   lexicon.Water,
		lexicon.BranchChuk: lexicon.Earth,
		lexicon.BranchIn:   lexicon.Wood,
		lexicon.BranchO:    lexicon.Fire,
		lexicon.BranchYu:   lexicon.Metal,
		lexicon.BranchHae:  lexicon.Water,
	}
	for b, e := range cases {
		assert.Equal(t, e, b.Element(), "element of %s", b)
	}
}

// TestBranch_Hidden verifies ordering (residual → primary) and that the
// primary qi shares the branch element for every branch.
func TestBranch_Hidden(t *testing.T) {
	for b := lexicon.Branch(0); b < lexicon.NumBranches; b++ {
		h := b.Hidden()
		require.NotEmpty(t, h, "branch %s", b)
		assert.Equal(t, lexicon.QiResidual, h[0].Qi, "first hidden stem of %s", b)
		assert.Equal(t, lexicon.QiPrimary, h[len(h)-1].Qi, "last hidden stem of %s", b)
		assert.Equal(t, b.Element(), b.PrimaryQi().Element(), "primary qi element of %s", b)
	}

	// Returned slices are copies.
	h := lexicon.BranchIn.Hidden()
	h[0].Stem = lexicon.StemGye
	assert.Equal(t, lexicon.StemMu, lexicon.BranchIn.Hidden()[0].Stem)
}

// TestNormalize_Aliases checks Korean and Chinese aliases and the lenient
// passthrough for unknown tokens.
func TestNormalize_Aliases(t *testing.T) {
	assert.Equal(t, "甲", lexicon.Normalize("갑"))
	assert.Equal(t, "甲", lexicon.Normalize("甲"))
	assert.Equal(t, "子", lexicon.Normalize("자"))
	assert.Equal(t, "辛", lexicon.Normalize("신"), "ambiguous 신 reads as a stem")
	assert.Equal(t, "申", lexicon.NormalizeBranch("신"))
	assert.Equal(t, "xyz", lexicon.Normalize("xyz"))
	assert.Equal(t, "", lexicon.NormalizeStem(""))
}

// TestParseFourPillars_Tokens covers the strict boundary parsers.
func TestParseFourPillars_Tokens(t *testing.T) {
	s, err := lexicon.ParseStem("경")
	require.NoError(t, err)
	assert.Equal(t, lexicon.StemGyeong, s)

	_, err = lexicon.ParseStem("Q")
	assert.ErrorIs(t, err, lexicon.ErrUnrecognizedToken)

	p, err := lexicon.ParsePillar("경신")
	require.NoError(t, err)
	assert.Equal(t, lexicon.Pillar{Stem: lexicon.StemGyeong, Branch: lexicon.BranchSin}, p)

	_, err = lexicon.ParsePillar("甲丑")
	assert.ErrorIs(t, err, lexicon.ErrPolarityMismatch)

	_, err = lexicon.ParsePillar("甲")
	assert.ErrorIs(t, err, lexicon.ErrUnrecognizedToken)

	fp, err := lexicon.ParseFourPillars("甲子, 乙丑, 丙寅, 丁卯")
	require.NoError(t, err)
	assert.Equal(t, "甲子 乙丑 丙寅 丁卯", fp.String())

	_, err = lexicon.ParseFourPillars("甲子 乙丑")
	assert.ErrorIs(t, err, lexicon.ErrBadPillarCount)
}

// TestCycleAt_Wraparound checks index ↔ pillar conversion including wraparound.
func TestCycleAt_Wraparound(t *testing.T) {
	assert.Equal(t, lexicon.CycleAt(0), lexicon.CycleAt(60))
	assert.Equal(t, lexicon.CycleAt(59), lexicon.CycleAt(-1))
	assert.Equal(t, "癸亥", lexicon.CycleAt(59).String())
	assert.Equal(t, "甲戌", lexicon.CycleAt(10).String())

	for i := 0; i < lexicon.CycleLength; i++ {
		idx, ok := lexicon.CycleIndex(lexicon.CycleAt(i))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := lexicon.CycleIndex(lexicon.Pillar{Stem: lexicon.StemGap, Branch: lexicon.BranchChuk})
	assert.False(t, ok, "mixed polarity pair is not in the cycle")
}

// TestVoidBranches_Decads checks the 공망 rule: two branches per decad.
func TestVoidBranches_Decads(t *testing.T) {
	v := lexicon.VoidBranches(lexicon.CycleAt(0))
	assert.Equal(t, [2]lexicon.Branch{lexicon.BranchSul, lexicon.BranchHae}, v)

	v = lexicon.VoidBranches(lexicon.CycleAt(10)) // 甲戌
	assert.Equal(t, [2]lexicon.Branch{lexicon.BranchSin, lexicon.BranchYu}, v)

	for i := 0; i < lexicon.CycleLength; i++ {
		p := lexicon.CycleAt(i)
		v := lexicon.VoidBranches(p)
		assert.NotEqual(t, v[0], v[1], "two distinct void branches for %s", p)
		assert.False(t, lexicon.IsVoid(p, p.Branch), "%s is not void of itself", p)
	}
}

// TestSibsinOf_Total verifies totality and the self → 비견 invariant.
func TestSibsinOf_Total(t *testing.T) {
	counts := make(map[lexicon.Sibsin]int)
	for d := lexicon.Stem(0); d < lexicon.NumStems; d++ {
		assert.Equal(t, lexicon.Bigyeon, lexicon.SibsinOf(d, d))
		for o := lexicon.Stem(0); o < lexicon.NumStems; o++ {
			counts[lexicon.SibsinOf(d, o)]++
		}
	}
	require.Len(t, counts, lexicon.NumSibsin)
	for role, n := range counts {
		assert.Equal(t, lexicon.NumStems, n, "role %s appears once per day master", role)
	}

	assert.Equal(t, lexicon.Jeonggwan, lexicon.SibsinOf(lexicon.StemGap, lexicon.StemSin))
	assert.Equal(t, lexicon.Pyeongwan, lexicon.SibsinOf(lexicon.StemGap, lexicon.StemGyeong))
	assert.Equal(t, lexicon.Jeongin, lexicon.SibsinOf(lexicon.StemGap, lexicon.StemGye))
	assert.Equal(t, lexicon.Siksin, lexicon.SibsinOf(lexicon.StemGap, lexicon.StemByeong))
	assert.Equal(t, lexicon.Jeongjae, lexicon.SibsinOf(lexicon.StemGap, lexicon.StemGi))
	assert.Equal(t, lexicon.GroupOfficer, lexicon.Jeonggwan.Group())
}

// TestRelationOf_Cycle checks generating/controlling cycles and RelationOf.
func TestRelationOf_Cycle(t *testing.T) {
	assert.Equal(t, lexicon.Fire, lexicon.Generates(lexicon.Wood))
	assert.Equal(t, lexicon.Wood, lexicon.Generates(lexicon.Water))
	assert.Equal(t, lexicon.Earth, lexicon.Controls(lexicon.Wood))
	assert.Equal(t, lexicon.Wood, lexicon.Controls(lexicon.Metal))

	for _, e := range lexicon.Elements {
		assert.Equal(t, e, lexicon.GeneratedBy(lexicon.Generates(e)))
		assert.Equal(t, e, lexicon.ControlledBy(lexicon.Controls(e)))
		assert.Equal(t, lexicon.RelSame, lexicon.RelationOf(e, e))
	}
	assert.Equal(t, lexicon.RelGenerates, lexicon.RelationOf(lexicon.Wood, lexicon.Water))
	assert.Equal(t, lexicon.RelGeneratedBy, lexicon.RelationOf(lexicon.Wood, lexicon.Fire))
	assert.Equal(t, lexicon.RelControls, lexicon.RelationOf(lexicon.Wood, lexicon.Metal))
	assert.Equal(t, lexicon.RelControlledBy, lexicon.RelationOf(lexicon.Wood, lexicon.Earth))
}

// TestTwelveStageOf_Walk checks known stage positions.
func TestTwelveStageOf_Walk(t *testing.T) {
	cases := []struct {
		stem   lexicon.Stem
		branch lexicon.Branch
		want   lexicon.Stage
	}{
		{lexicon.StemGap, lexicon.BranchHae, lexicon.StageJangsaeng},
		{lexicon.StemGap, lexicon.BranchIn, lexicon.StageGeonrok},
		{lexicon.StemGap, lexicon.BranchMyo, lexicon.StageJewang},
		{lexicon.StemEul, lexicon.BranchMyo, lexicon.StageGeonrok},
		{lexicon.StemEul, lexicon.BranchO, lexicon.StageJangsaeng},
		{lexicon.StemIm, lexicon.BranchHae, lexicon.StageGeonrok},
		{lexicon.StemGye, lexicon.BranchJa, lexicon.StageGeonrok},
	}
	for _, c := range cases {
		got := lexicon.TwelveStageOf(c.stem, c.branch)
		assert.Equal(t, c.want, got.Stage, "%s on %s", c.stem, c.branch)
	}
	peak := lexicon.TwelveStageOf(lexicon.StemGap, lexicon.BranchIn)
	assert.Equal(t, 10, peak.Score)
	assert.Equal(t, lexicon.EnergyStrong, peak.Energy)
}

// TestPairTables_Symmetric verifies table[a]==b ⇒ table[b]==a for every
// symmetric branch family and the stem combination table.
func TestPairTables_Symmetric(t *testing.T) {
	for f := lexicon.PairFamily(0); f < lexicon.NumPairFamilies; f++ {
		for b := lexicon.Branch(0); b < lexicon.NumBranches; b++ {
			p := lexicon.BranchPartner(f, b)
			assert.Equal(t, b, lexicon.BranchPartner(f, p), "%s: %s ↔ %s", f, b, p)
			assert.NotEqual(t, b, p, "%s: %s paired with itself", f, b)
			assert.True(t, lexicon.IsBranchPair(f, p, b))
		}
	}
	for s := lexicon.Stem(0); s < lexicon.NumStems; s++ {
		p := lexicon.StemCombinationPartner(s)
		assert.Equal(t, s, lexicon.StemCombinationPartner(p))
		e1, ok1 := lexicon.StemCombination(s, p)
		e2, ok2 := lexicon.StemCombination(p, s)
		assert.True(t, ok1 && ok2)
		assert.Equal(t, e1, e2)
	}
	for _, mode := range []lexicon.ClashMode{lexicon.ClashMode4, lexicon.ClashMode5} {
		for a := lexicon.Stem(0); a < lexicon.NumStems; a++ {
			for b := lexicon.Stem(0); b < lexicon.NumStems; b++ {
				assert.Equal(t, lexicon.StemClash(a, b, mode), lexicon.StemClash(b, a, mode))
			}
		}
	}
}

// TestPairTables_KnownPairs spot-checks each family.
func TestPairTables_KnownPairs(t *testing.T) {
	e, ok := lexicon.SixCombination(lexicon.BranchJa, lexicon.BranchChuk)
	assert.True(t, ok)
	assert.Equal(t, lexicon.Earth, e)

	assert.True(t, lexicon.IsBranchPair(lexicon.FamilyClash, lexicon.BranchJa, lexicon.BranchO))
	assert.True(t, lexicon.IsBranchPair(lexicon.FamilyBreak, lexicon.BranchJa, lexicon.BranchYu))
	assert.True(t, lexicon.IsBranchPair(lexicon.FamilyHarm, lexicon.BranchJa, lexicon.BranchMi))
	assert.True(t, lexicon.IsBranchPair(lexicon.FamilyResentment, lexicon.BranchIn, lexicon.BranchYu))

	te, ok := lexicon.StemCombination(lexicon.StemGap, lexicon.StemGi)
	assert.True(t, ok)
	assert.Equal(t, lexicon.Earth, te)

	assert.True(t, lexicon.StemClash(lexicon.StemGap, lexicon.StemGyeong, lexicon.ClashMode4))
	assert.False(t, lexicon.StemClash(lexicon.StemMu, lexicon.StemIm, lexicon.ClashMode4))
	assert.True(t, lexicon.StemClash(lexicon.StemMu, lexicon.StemIm, lexicon.ClashMode5))

	assert.True(t, lexicon.IsPunishment(lexicon.BranchIn, lexicon.BranchSa))
	assert.True(t, lexicon.IsPunishment(lexicon.BranchMyo, lexicon.BranchJa))
	assert.True(t, lexicon.IsPunishment(lexicon.BranchO, lexicon.BranchO))
	assert.False(t, lexicon.IsPunishment(lexicon.BranchJa, lexicon.BranchJa))

	tri, ok := lexicon.SameThreeCombination(lexicon.BranchJa, lexicon.BranchJin)
	assert.True(t, ok)
	assert.Equal(t, lexicon.Water, tri.Element)
}

// TestBranchSet_Ops covers the bitset helpers used by triad detection.
func TestBranchSet_Ops(t *testing.T) {
	s := lexicon.NewBranchSet(lexicon.BranchJa, lexicon.BranchJin, lexicon.BranchJa)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(lexicon.BranchJin))
	assert.False(t, s.Has(lexicon.BranchSin))
	assert.Equal(t, []lexicon.Branch{lexicon.BranchJa, lexicon.BranchJin}, s.Branches())
	assert.False(t, s.Has(lexicon.Branch(40)))
}

// TestSpecialStars_Chart checks nobility and travel detection on a known chart.
func TestSpecialStars_Chart(t *testing.T) {
	fp, err := lexicon.ParseFourPillars("甲子 丁丑 甲寅 癸未")
	require.NoError(t, err)

	stars := lexicon.SpecialStars(fp)
	var names []string
	for _, st := range stars {
		names = append(names, st.Name+"@"+st.Position.String())
	}
	assert.Contains(t, names, "천을귀인@month")
	assert.Contains(t, names, "천을귀인@time")
	assert.Contains(t, names, "역마@day", "寅 is the travel star of the 申子辰 year branch")

	assert.Equal(t, lexicon.BranchIn, lexicon.TravelStar(lexicon.BranchJa))
	assert.Equal(t, lexicon.BranchYu, lexicon.PeachBlossom(lexicon.BranchJa))
	b, ok := lexicon.YangBlade(lexicon.StemGap)
	assert.True(t, ok)
	assert.Equal(t, lexicon.BranchMyo, b)
	_, ok = lexicon.YangBlade(lexicon.StemEul)
	assert.False(t, ok)
}
