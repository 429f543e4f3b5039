// SPDX-License-Identifier: MIT

package profile

import (
	"slices"
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/calendar"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
)

// Score bounds shared by every horizon.
const (
	MinScore          = 15
	MaxScore          = 95
	NeutralScore      = 50
	PositiveThreshold = 60
	NegativeThreshold = 40
)

// Factor keys. Stage factors use the stage name itself (e.g. "건록") and
// sibsin factors the role name (e.g. "정관").
const (
	FactorNobility         = lexicon.StarNobility // 천을귀인
	FactorYongsin          = "용신운"
	FactorHuisin           = "희신운"
	FactorKisin            = "기신운"
	FactorResource         = "인성운"
	FactorPeer             = "비겁운"
	FactorOutput           = "식상운"
	FactorWealth           = "재성운"
	FactorOfficer          = "관성운"
	FactorSixCombination   = "육합"
	FactorThreeCombination = "삼합"
	FactorClash            = "충"
	FactorPunishment       = "형"
	FactorBreak            = "파"
	FactorHarm             = "해"
	FactorResentment       = "원진"
	FactorVoid             = "공망"
	FactorYongsinHarmony   = "용신조화"
	FactorKisinExcess      = "기신과다"
	FactorStructureMet     = "격국부합"
	FactorStructureBroken  = "격국파격"
)

// elementDelta scores how a candidate element stands to the day master.
var elementDelta = [...]struct {
	delta int
	key   string
}{
	lexicon.RelSame:         {5, FactorPeer},
	lexicon.RelGenerates:    {8, FactorResource},
	lexicon.RelGeneratedBy:  {3, FactorOutput},
	lexicon.RelControls:     {-6, FactorOfficer},
	lexicon.RelControlledBy: {4, FactorWealth},
}

const (
	yongsinPrimaryBonus   = 15
	yongsinSecondaryBonus = 8
	kisinPenalty          = -15
	nobilityBonus         = 12
	voidPenalty           = -6
	alignmentSpan         = 40
	structureStep         = 6
)

// branchDelta scores a relation between a candidate branch and the natal
// day branch.
var branchDelta = map[relations.Kind]struct {
	delta int
	key   string
}{
	relations.KindSixCombination:   {10, FactorSixCombination},
	relations.KindThreeCombination: {8, FactorThreeCombination},
	relations.KindClash:            {-12, FactorClash},
	relations.KindPunishment:       {-8, FactorPunishment},
	relations.KindBreak:            {-4, FactorBreak},
	relations.KindHarm:             {-5, FactorHarm},
	relations.KindResentment:       {-5, FactorResentment},
}

// sibsinDelta scores the role of the day's stem.
var sibsinDelta = [lexicon.NumSibsin]int{
	lexicon.Bigyeon:   1,
	lexicon.Geopjae:   -4,
	lexicon.Siksin:    5,
	lexicon.Sanggwan:  -4,
	lexicon.Pyeonjae:  3,
	lexicon.Jeongjae:  6,
	lexicon.Pyeongwan: -5,
	lexicon.Jeonggwan: 6,
	lexicon.Pyeonin:   0,
	lexicon.Jeongin:   5,
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	return min(max(score, MinScore), MaxScore)
}

// tally accumulates a score and its ordered, de-duplicated factor keys.
type tally struct {
	score int
	keys  []string
}

func newTally() *tally { return &tally{score: NeutralScore, keys: []string{}} }

func (t *tally) add(delta int, key string) {
	t.score += delta
	if key != "" && !slices.Contains(t.keys, key) {
		t.keys = append(t.keys, key)
	}
}

func (t *tally) result() SubAnalysis {
	s := Clamp(t.score)
	return SubAnalysis{
		Score:      s,
		FactorKeys: t.keys,
		Positive:   s >= PositiveThreshold,
		Negative:   s <= NegativeThreshold,
	}
}

// Analyze scores one candidate date against in.Profile on all six horizons.
func Analyze(in Input) Result {
	if !in.Date.IsZero() {
		if in.TargetYear == 0 {
			in.TargetYear = calendar.SajuYear(in.Date)
		}
		if in.TargetMonth == 0 {
			in.TargetMonth = in.Date.Month()
		}
	}
	p := in.Profile
	dm := p.DayMaster
	year := calendar.YearPillar(in.TargetYear)
	month := monthPillar(in)

	var r Result
	cycle, hasCycle := p.DaeunAt(in.TargetYear - p.BirthYear)

	// 대운
	daeun := newTally()
	if hasCycle {
		scoreElement(daeun, p, cycle.Element)
	}
	r.Daeun = daeun.result()

	// 세운 and 월운
	r.Seun = scorePillar(p, year).result()
	r.Wolun = scorePillar(p, month).result()

	// 일진
	iljin := scorePillar(p, in.Day)
	stage := lexicon.TwelveStageOf(dm, in.Day.Branch)
	if stage.Score >= 7 || stage.Score <= 2 {
		iljin.add((stage.Score-5)*2, stage.Stage.String())
	} else {
		iljin.add((stage.Score-5)*2, "")
	}
	if in.Day.Stem.Valid() {
		role := lexicon.SibsinOf(dm, in.Day.Stem)
		d := sibsinDelta[role]
		key := ""
		if d != 0 {
			key = role.String()
		}
		iljin.add(d, key)
	}
	if lexicon.IsNobility(dm, in.Day.Branch) {
		iljin.add(nobilityBonus, FactorNobility)
	}
	if lexicon.IsVoid(p.DayPillar(), in.Day.Branch) {
		iljin.add(voidPenalty, FactorVoid)
	}
	r.Iljin = IljinAnalysis{SubAnalysis: iljin.result(), GanZhi: in.Day}

	env := environment{year: year, month: month, day: in.Day}
	if hasCycle {
		env.daeun = &cycle
	}
	r.Yongsin = scoreYongsin(p, env).result()
	r.Geokguk = scoreGeokguk(p, env).result()
	return r
}

// monthPillar returns the supplied month pillar or approximates it from the
// target year and civil month (January is the 丑 month of the prior year).
func monthPillar(in Input) lexicon.Pillar {
	if in.Month != nil {
		return *in.Month
	}
	m := in.TargetMonth
	if m < time.January || m > time.December {
		m = time.January
	}
	b := lexicon.Branch(int(m) % lexicon.NumBranches)
	y := in.TargetYear
	if m == time.January {
		y--
	}
	return calendar.MonthPillarFor(calendar.YearPillar(y).Stem, b)
}

// scoreElement adds the element-relation and yongsin/kisin factors of el.
func scoreElement(t *tally, p Profile, el lexicon.Element) {
	if !el.Valid() || !p.DayMaster.Valid() {
		return
	}
	e := elementDelta[lexicon.RelationOf(p.DayMaster.Element(), el)]
	t.add(e.delta, e.key)

	switch {
	case len(p.Yongsin) > 0 && p.Yongsin[0] == el:
		t.add(yongsinPrimaryBonus, FactorYongsin)
	case len(p.Yongsin) > 1 && slices.Contains(p.Yongsin[1:], el):
		t.add(yongsinSecondaryBonus, FactorHuisin)
	}
	if slices.Contains(p.Kisin, el) {
		t.add(kisinPenalty, FactorKisin)
	}
}

// scorePillar scores a pillar's stem element and its branch relations with
// the natal day branch.
func scorePillar(p Profile, pl lexicon.Pillar) *tally {
	t := newTally()
	if pl.Stem.Valid() {
		scoreElement(t, p, pl.Stem.Element())
	}
	scoreBranch(t, p.DayBranch, pl.Branch)
	return t
}

func scoreBranch(t *tally, natal, b lexicon.Branch) {
	seen := make(map[relations.Kind]bool)
	for _, h := range relations.BranchInteractions(natal, b) {
		d, ok := branchDelta[h.Kind]
		if !ok || seen[h.Kind] {
			continue
		}
		seen[h.Kind] = true
		t.add(d.delta, d.key)
	}
}

// environment is the combined decade/year/month/day setting of a date.
type environment struct {
	daeun *DaeunCycle
	year  lexicon.Pillar
	month lexicon.Pillar
	day   lexicon.Pillar
}

type weighted struct {
	el lexicon.Element
	w  float64
}

// elements lists the environment's elements with their weights; the day
// counts one and a half.
func (e environment) elements() []weighted {
	var out []weighted
	if e.daeun != nil {
		out = append(out, weighted{e.daeun.Element, 1})
	}
	for _, x := range []struct {
		p lexicon.Pillar
		w float64
	}{{e.year, 1}, {e.month, 1}, {e.day, 1.5}} {
		if x.p.Stem.Valid() {
			out = append(out, weighted{x.p.Stem.Element(), x.w / 2})
		}
		if x.p.Branch.Valid() {
			out = append(out, weighted{x.p.Branch.Element(), x.w / 2})
		}
	}
	return out
}

// stems lists the environment's stems plus the day branch's primary qi.
func (e environment) stems() []lexicon.Stem {
	var out []lexicon.Stem
	if e.daeun != nil {
		out = append(out, e.daeun.Stem)
	}
	for _, s := range []lexicon.Stem{e.year.Stem, e.month.Stem, e.day.Stem} {
		if s.Valid() {
			out = append(out, s)
		}
	}
	if e.day.Branch.Valid() {
		out = append(out, e.day.Branch.PrimaryQi())
	}
	return out
}

// scoreYongsin measures the favourable share of the environment minus the
// avoided share, spread over ±alignmentSpan.
func scoreYongsin(p Profile, env environment) *tally {
	t := newTally()
	if len(p.Yongsin) == 0 && len(p.Kisin) == 0 {
		return t
	}
	var fav, unfav, total float64
	for _, x := range env.elements() {
		total += x.w
		switch {
		case len(p.Yongsin) > 0 && x.el == p.Yongsin[0]:
			fav += x.w
		case slices.Contains(p.Yongsin, x.el):
			fav += x.w * 0.6
		}
		if slices.Contains(p.Kisin, x.el) {
			unfav += x.w
		}
	}
	if total == 0 {
		return t
	}
	delta := int((fav - unfav) / total * alignmentSpan)
	key := ""
	switch {
	case fav > unfav:
		key = FactorYongsinHarmony
	case unfav > fav:
		key = FactorKisinExcess
	}
	t.add(delta, key)
	return t
}

// scoreGeokguk counts environment stems whose role group completes or
// breaks the archetype.
func scoreGeokguk(p Profile, env environment) *tally {
	t := newTally()
	req := p.Geokguk.Requirement()
	if len(req.Favoured) == 0 && len(req.Disfavoured) == 0 {
		return t
	}
	var met, broken int
	for _, s := range env.stems() {
		g := lexicon.SibsinOf(p.DayMaster, s).Group()
		if containsGroup(req.Favoured, g) {
			met++
		}
		if containsGroup(req.Disfavoured, g) {
			broken++
		}
	}
	if met > 0 {
		t.add(met*structureStep, FactorStructureMet)
	}
	if broken > 0 {
		t.add(-broken*structureStep, FactorStructureBroken)
	}
	return t
}
