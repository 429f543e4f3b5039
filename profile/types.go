// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// Gender selects the decade direction together with the year polarity.
type Gender uint8

const (
	GenderUnknown Gender = iota
	Male
	Female
)

// String returns "male", "female" or "unknown".
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// ParseGender accepts "male"/"m"/"남" and "female"/"f"/"여".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "남", "남자":
		return Male, nil
	case "female", "f", "여", "여자":
		return Female, nil
	}
	return GenderUnknown, fmt.Errorf("%q: %w", s, ErrUnknownGender)
}

// DaeunCycle is one ten-year decade. It covers ages [StartAge, StartAge+10);
// EndAge is the last covered age.
type DaeunCycle struct {
	Stem     lexicon.Stem    `json:"stem"`
	Branch   lexicon.Branch  `json:"branch"`
	StartAge int             `json:"start_age"`
	EndAge   int             `json:"end_age"`
	Element  lexicon.Element `json:"element"`
}

// Pillar returns the decade as a pillar.
func (c DaeunCycle) Pillar() lexicon.Pillar {
	return lexicon.Pillar{Stem: c.Stem, Branch: c.Branch}
}

// Covers reports whether age falls inside the decade.
func (c DaeunCycle) Covers(age int) bool {
	return age >= c.StartAge && age < c.StartAge+10
}

// Profile is the static part of a person's chart. Yongsin lists the
// favourable elements, primary first; Kisin the avoided ones.
type Profile struct {
	DayMaster lexicon.Stem      `json:"day_master"`
	DayBranch lexicon.Branch    `json:"day_branch"`
	BirthYear int               `json:"birth_year"`
	Yongsin   []lexicon.Element `json:"yongsin,omitempty"`
	Kisin     []lexicon.Element `json:"kisin,omitempty"`
	Geokguk   Geokguk           `json:"geokguk"`
	Daeun     []DaeunCycle      `json:"daeun,omitempty"`
}

// DayPillar returns the natal day pillar.
func (p Profile) DayPillar() lexicon.Pillar {
	return lexicon.Pillar{Stem: p.DayMaster, Branch: p.DayBranch}
}

// DaeunAt returns the decade covering age.
func (p Profile) DaeunAt(age int) (DaeunCycle, bool) {
	for _, c := range p.Daeun {
		if c.Covers(age) {
			return c, true
		}
	}
	return DaeunCycle{}, false
}

// Input is one candidate date. Day is the date's day pillar. Month is the
// solar-term month pillar; when nil it is approximated from TargetYear and
// TargetMonth. The year pillar is always derived from TargetYear, a saju
// year. A zero TargetYear or TargetMonth is filled in from Date.
type Input struct {
	Profile     Profile
	Day         lexicon.Pillar
	Month       *lexicon.Pillar
	TargetYear  int
	TargetMonth time.Month
	Date        time.Time
}

// SubAnalysis is one horizon's score and the factors behind it.
type SubAnalysis struct {
	Score      int      `json:"score"`
	FactorKeys []string `json:"factor_keys"`
	Positive   bool     `json:"positive"`
	Negative   bool     `json:"negative"`
}

// IljinAnalysis is the day horizon; it also carries the day pillar.
type IljinAnalysis struct {
	SubAnalysis
	GanZhi lexicon.Pillar `json:"ganzhi"`
}

// Result holds the six horizon analyses of one date.
type Result struct {
	Daeun   SubAnalysis   `json:"daeun"`
	Seun    SubAnalysis   `json:"seun"`
	Wolun   SubAnalysis   `json:"wolun"`
	Iljin   IljinAnalysis `json:"iljin"`
	Yongsin SubAnalysis   `json:"yongsin"`
	Geokguk SubAnalysis   `json:"geokguk"`
}

// Clone returns a copy that shares no factor-key storage with r.
func (r Result) Clone() Result {
	r.Daeun.FactorKeys = slices.Clone(r.Daeun.FactorKeys)
	r.Seun.FactorKeys = slices.Clone(r.Seun.FactorKeys)
	r.Wolun.FactorKeys = slices.Clone(r.Wolun.FactorKeys)
	r.Iljin.FactorKeys = slices.Clone(r.Iljin.FactorKeys)
	r.Yongsin.FactorKeys = slices.Clone(r.Yongsin.FactorKeys)
	r.Geokguk.FactorKeys = slices.Clone(r.Geokguk.FactorKeys)
	return r
}

// Horizon names one of the six sub-analyses.
type Horizon uint8

const (
	HorizonDaeun Horizon = iota
	HorizonSeun
	HorizonWolun
	HorizonIljin
	HorizonYongsin
	HorizonGeokguk
)

// NumHorizons is the number of sub-analyses in a Result.
const NumHorizons = 6

var horizonNames = [NumHorizons]string{"daeun", "seun", "wolun", "iljin", "yongsin", "geokguk"}

// String returns the lower-case horizon name.
func (h Horizon) String() string {
	if h >= NumHorizons {
		return "horizon(?)"
	}
	return horizonNames[h]
}

// ParseHorizon resolves a horizon name.
func ParseHorizon(s string) (Horizon, bool) {
	for i, n := range horizonNames {
		if n == s {
			return Horizon(i), true
		}
	}
	return 0, false
}

// Get returns the sub-analysis for h.
func (r Result) Get(h Horizon) SubAnalysis {
	switch h {
	case HorizonDaeun:
		return r.Daeun
	case HorizonSeun:
		return r.Seun
	case HorizonWolun:
		return r.Wolun
	case HorizonIljin:
		return r.Iljin.SubAnalysis
	case HorizonYongsin:
		return r.Yongsin
	default:
		return r.Geokguk
	}
}
