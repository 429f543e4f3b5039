// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// Geokguk is the structural archetype of a chart, named after the role the
// month branch's primary qi holds relative to the day master.
type Geokguk uint8

const (
	GeokgukUnknown   Geokguk = iota
	GeokgukGeonrok           // 건록격
	GeokgukYangin            // 양인격
	GeokgukSiksin            // 식신격
	GeokgukSanggwan          // 상관격
	GeokgukPyeonjae          // 편재격
	GeokgukJeongjae          // 정재격
	GeokgukPyeongwan         // 편관격
	GeokgukJeonggwan         // 정관격
	GeokgukPyeonin           // 편인격
	GeokgukJeongin           // 정인격
)

// NumGeokguk counts the archetypes including GeokgukUnknown.
const NumGeokguk = 11

var geokgukNames = [NumGeokguk]string{
	"미정", "건록격", "양인격", "식신격", "상관격", "편재격", "정재격", "편관격", "정관격", "편인격", "정인격",
}

// String returns the Korean name, e.g. "정관격".
func (g Geokguk) String() string {
	if g >= NumGeokguk {
		return fmt.Sprintf("geokguk(%d)", g)
	}
	return geokgukNames[g]
}

// MarshalText implements encoding.TextMarshaler.
func (g Geokguk) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText accepts the Korean name.
func (g *Geokguk) UnmarshalText(b []byte) error {
	for i, n := range geokgukNames {
		if n == string(b) {
			*g = Geokguk(i)
			return nil
		}
	}
	return fmt.Errorf("profile: unknown geokguk %q", string(b))
}

// GeokgukOf maps a sibsin role onto its archetype. 비견 is 건록격 and 겁재
// is 양인격.
func GeokgukOf(role lexicon.Sibsin) Geokguk {
	if role >= lexicon.NumSibsin {
		return GeokgukUnknown
	}
	return Geokguk(role + 1)
}

// Requirement is the structural need of an archetype: the role groups that
// complete it and the ones that break it.
type Requirement struct {
	Favoured    []lexicon.SibsinGroup
	Disfavoured []lexicon.SibsinGroup
}

var requirements = [NumGeokguk]Requirement{
	GeokgukGeonrok:   {Favoured: []lexicon.SibsinGroup{lexicon.GroupWealth, lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupPeer}},
	GeokgukYangin:    {Favoured: []lexicon.SibsinGroup{lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupPeer, lexicon.GroupResource}},
	GeokgukSiksin:    {Favoured: []lexicon.SibsinGroup{lexicon.GroupWealth}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupResource}},
	GeokgukSanggwan:  {Favoured: []lexicon.SibsinGroup{lexicon.GroupWealth, lexicon.GroupResource}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupOfficer}},
	GeokgukPyeonjae:  {Favoured: []lexicon.SibsinGroup{lexicon.GroupOutput, lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupPeer}},
	GeokgukJeongjae:  {Favoured: []lexicon.SibsinGroup{lexicon.GroupOutput, lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupPeer}},
	GeokgukPyeongwan: {Favoured: []lexicon.SibsinGroup{lexicon.GroupOutput, lexicon.GroupResource}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupWealth}},
	GeokgukJeonggwan: {Favoured: []lexicon.SibsinGroup{lexicon.GroupWealth, lexicon.GroupResource}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupOutput}},
	GeokgukPyeonin:   {Favoured: []lexicon.SibsinGroup{lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupWealth}},
	GeokgukJeongin:   {Favoured: []lexicon.SibsinGroup{lexicon.GroupOfficer}, Disfavoured: []lexicon.SibsinGroup{lexicon.GroupWealth}},
}

// Requirement returns the archetype's structural need. GeokgukUnknown has
// none.
func (g Geokguk) Requirement() Requirement {
	if g >= NumGeokguk {
		return Requirement{}
	}
	r := requirements[g]
	return Requirement{
		Favoured:    append([]lexicon.SibsinGroup(nil), r.Favoured...),
		Disfavoured: append([]lexicon.SibsinGroup(nil), r.Disfavoured...),
	}
}

func containsGroup(gs []lexicon.SibsinGroup, g lexicon.SibsinGroup) bool {
	for _, x := range gs {
		if x == g {
			return true
		}
	}
	return false
}
