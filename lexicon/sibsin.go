// SPDX-License-Identifier: MIT

package lexicon

// Sibsin is one of the ten relational roles (십신) a stem holds relative to a
// day-master stem.
type Sibsin uint8

const (
	Bigyeon   Sibsin = iota // 비견 peer, same polarity
	Geopjae                 // 겁재 rob wealth, opposite polarity
	Siksin                  // 식신 eating god
	Sanggwan                // 상관 hurting officer
	Pyeonjae                // 편재 indirect wealth
	Jeongjae                // 정재 direct wealth
	Pyeongwan               // 편관 seven killings
	Jeonggwan               // 정관 direct officer
	Pyeonin                 // 편인 indirect resource
	Jeongin                 // 정인 direct resource
)

// NumSibsin is the number of relational roles.
const NumSibsin = 10

var sibsinNames = [NumSibsin]string{"비견", "겁재", "식신", "상관", "편재", "정재", "편관", "정관", "편인", "정인"}

// String returns the Korean name of the role.
func (s Sibsin) String() string {
	if s >= NumSibsin {
		return "십신(?)"
	}
	return sibsinNames[s]
}

// Group folds a role into its five-way family.
func (s Sibsin) Group() SibsinGroup { return SibsinGroup(s % NumSibsin / 2) }

// SibsinGroup is the five-way family of a role (비겁, 식상, 재성, 관성, 인성).
type SibsinGroup uint8

const (
	GroupPeer     SibsinGroup = iota // 비겁
	GroupOutput                      // 식상
	GroupWealth                      // 재성
	GroupOfficer                     // 관성
	GroupResource                    // 인성
)

var groupNames = [...]string{"비겁", "식상", "재성", "관성", "인성"}

// String returns the Korean family name.
func (g SibsinGroup) String() string {
	if int(g) >= len(groupNames) {
		return "?"
	}
	return groupNames[g]
}

// GroupOfElement returns the family an element falls into relative to a
// day-master element.
func GroupOfElement(dayMaster, e Element) SibsinGroup {
	switch RelationOf(dayMaster, e) {
	case RelSame:
		return GroupPeer
	case RelGeneratedBy:
		return GroupOutput
	case RelControlledBy:
		return GroupWealth
	case RelControls:
		return GroupOfficer
	default:
		return GroupResource
	}
}

// sibsinTable is filled at init from the element cycle; it is total over
// all 10×10 stem pairs.
var sibsinTable [NumStems][NumStems]Sibsin

func init() {
	for d := Stem(0); d < NumStems; d++ {
		for o := Stem(0); o < NumStems; o++ {
			g := GroupOfElement(d.Element(), o.Element())
			role := Sibsin(g * 2)
			if d.Polarity() != o.Polarity() {
				role++
			}
			sibsinTable[d][o] = role
		}
	}
}

// SibsinOf returns the role of other relative to the day master.
// SibsinOf(s, s) is always Bigyeon.
func SibsinOf(dayMaster, other Stem) Sibsin {
	return sibsinTable[dayMaster%NumStems][other%NumStems]
}
