// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/calendar"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// DefaultDaeunCount is the number of decades Derive lays out (ages up to ~90).
const DefaultDaeunCount = 8

// Hidden-stem weights for the strength balance; the month branch (월령)
// counts double.
const (
	stemWeight        = 1.0
	primaryQiWeight   = 1.0
	middleQiWeight    = 0.5
	residualQiWeight  = 0.3
	monthBranchFactor = 2.0
	daysPerDaeunYear  = 3.0
)

// Balance is the weighted element distribution of a chart.
type Balance struct {
	Weights [lexicon.NumElements]float64
	// Support is the weight of the day master's own element plus the element
	// that feeds it.
	Support float64
	Total   float64
}

// Strong reports whether the supporting elements hold at least half of the
// chart.
func (b Balance) Strong() bool { return b.Support*2 >= b.Total }

// ElementBalance weighs every stem and hidden stem of fp.
func ElementBalance(fp lexicon.FourPillars) Balance {
	var b Balance
	for pos, p := range fp.Array() {
		if p.Stem.Valid() {
			b.Weights[p.Stem.Element()] += stemWeight
		}
		if !p.Branch.Valid() {
			continue
		}
		factor := 1.0
		if lexicon.Position(pos) == lexicon.PosMonth {
			factor = monthBranchFactor
		}
		for _, h := range p.Branch.Hidden() {
			w := residualQiWeight
			switch h.Qi {
			case lexicon.QiPrimary:
				w = primaryQiWeight
			case lexicon.QiMiddle:
				w = middleQiWeight
			}
			b.Weights[h.Stem.Element()] += w * factor
		}
	}
	for _, w := range b.Weights {
		b.Total += w
	}
	if dm := fp.Day.Stem; dm.Valid() {
		e := dm.Element()
		b.Support = b.Weights[e] + b.Weights[lexicon.GeneratedBy(e)]
	}
	return b
}

// Derive builds a Profile from a natal chart. BirthYear is the saju year of
// birth (switching at 입춘), the basis Analyze measures ages against.
//
// A strong day master takes the weakest of its output, wealth and officer
// elements as yongsin and avoids its resource and peer elements; a weak
// one takes resource and peer (weakest first) and avoids officer and
// wealth. The geokguk follows the month branch's primary qi.
func Derive(fp lexicon.FourPillars, birth time.Time, g Gender) (Profile, error) {
	for pos, p := range fp.Array() {
		if _, ok := lexicon.CycleIndex(p); !ok {
			return Profile{}, fmt.Errorf("%s pillar %v: %w", lexicon.Position(pos), p, ErrInvalidChart)
		}
	}
	cycles, err := DaeunCycles(fp, birth, g, DefaultDaeunCount)
	if err != nil {
		return Profile{}, err
	}

	dm := fp.Day.Stem.Element()
	bal := ElementBalance(fp)
	byWeight := func(es ...lexicon.Element) []lexicon.Element {
		slices.SortStableFunc(es, func(a, b lexicon.Element) int {
			switch {
			case bal.Weights[a] < bal.Weights[b]:
				return -1
			case bal.Weights[a] > bal.Weights[b]:
				return 1
			}
			return 0
		})
		return es
	}

	var yongsin, kisin []lexicon.Element
	if bal.Strong() {
		yongsin = byWeight(lexicon.Generates(dm), lexicon.Controls(dm), lexicon.ControlledBy(dm))[:2]
		kisin = []lexicon.Element{lexicon.GeneratedBy(dm), dm}
	} else {
		yongsin = byWeight(lexicon.GeneratedBy(dm), dm)
		kisin = []lexicon.Element{lexicon.ControlledBy(dm), lexicon.Controls(dm)}
	}

	return Profile{
		DayMaster: fp.Day.Stem,
		DayBranch: fp.Day.Branch,
		BirthYear: calendar.SajuYear(birth),
		Yongsin:   yongsin,
		Kisin:     kisin,
		Geokguk:   GeokgukOf(lexicon.SibsinOf(fp.Day.Stem, fp.Month.Branch.PrimaryQi())),
		Daeun:     cycles,
	}, nil
}

// DaeunCycles lays out count decades from the month pillar. They run
// forward for a yang year and a man or a yin year and a woman, backward
// otherwise. The first decade starts at the number of days to the next
// (forward) or previous (backward) 節 term divided by three, at least one.
// Each decade's element is its branch's element.
func DaeunCycles(fp lexicon.FourPillars, birth time.Time, g Gender, count int) ([]DaeunCycle, error) {
	if g != Male && g != Female {
		return nil, ErrUnknownGender
	}
	idx, ok := lexicon.CycleIndex(fp.Month)
	if !ok {
		return nil, fmt.Errorf("month pillar %v: %w", fp.Month, ErrInvalidChart)
	}
	if count <= 0 {
		return nil, nil
	}

	forward := (fp.Year.Stem.Polarity() == lexicon.Yang) == (g == Male)
	var gap time.Duration
	step := 1
	if forward {
		gap = calendar.NextTerm(birth).Sub(birth)
	} else {
		gap = birth.Sub(calendar.PrevTerm(birth))
		step = -1
	}
	start := int(math.Round(gap.Hours() / 24 / daysPerDaeunYear))
	if start < 1 {
		start = 1
	}

	out := make([]DaeunCycle, count)
	for i := range out {
		p := lexicon.CycleAt(idx + step*(i+1))
		age := start + 10*i
		out[i] = DaeunCycle{
			Stem:     p.Stem,
			Branch:   p.Branch,
			StartAge: age,
			EndAge:   age + 9,
			Element:  p.Branch.Element(),
		}
	}
	return out, nil
}
