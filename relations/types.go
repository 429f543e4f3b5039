// SPDX-License-Identifier: MIT

package relations

import (
	"fmt"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// Kind is a relation family. The declaration order is the output order.
type Kind uint8

const (
	KindHeavenlyCombination Kind = iota // 천간합
	KindHeavenlyClash                   // 천간충
	KindSixCombination                  // 육합
	KindThreeCombination                // 삼합
	KindClash                           // 충
	KindPunishment                      // 형
	KindBreak                           // 파
	KindHarm                            // 해
	KindResentment                      // 원진
	KindVoid                            // 공망
)

// NumKinds is the number of relation families.
const NumKinds = 10

var kindNames = [NumKinds]string{
	"heavenly_combination", "heavenly_clash", "six_combination", "three_combination",
	"clash", "punishment", "break", "harm", "resentment", "void",
}

var kindKorean = [NumKinds]string{"천간합", "천간충", "육합", "삼합", "충", "형", "파", "해", "원진", "공망"}

// String returns the snake_case name used in JSON output.
func (k Kind) String() string {
	if k >= NumKinds {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindNames[k]
}

// Korean returns the traditional term, e.g. "육합".
func (k Kind) Korean() string {
	if k >= NumKinds {
		return "?"
	}
	return kindKorean[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// IsHeavenly reports whether k is a stem relation.
func (k Kind) IsHeavenly() bool { return k == KindHeavenlyCombination || k == KindHeavenlyClash }

// IsEarthly reports whether k is a branch relation (void excluded).
func (k Kind) IsEarthly() bool { return k >= KindSixCombination && k <= KindResentment }

// Category groups kinds for scoring tables.
type Category uint8

const (
	CategoryCombination Category = iota
	CategoryClash
	CategoryPunishment
	CategoryBreak
	CategoryHarm
	CategoryResentment
	CategoryVoid
)

// NumCategories is the number of relation categories.
const NumCategories = 7

var categoryNames = [NumCategories]string{"combination", "clash", "punishment", "break", "harm", "resentment", "void"}

// String returns the lower-case category name.
func (c Category) String() string {
	if c >= NumCategories {
		return "category(?)"
	}
	return categoryNames[c]
}

// ParseCategory resolves a category name.
func ParseCategory(s string) (Category, bool) {
	for i, n := range categoryNames {
		if n == s {
			return Category(i), true
		}
	}
	return 0, false
}

// Category folds the kind into its category.
func (k Kind) Category() Category {
	switch k {
	case KindHeavenlyCombination, KindSixCombination, KindThreeCombination:
		return CategoryCombination
	case KindHeavenlyClash, KindClash:
		return CategoryClash
	case KindPunishment:
		return CategoryPunishment
	case KindBreak:
		return CategoryBreak
	case KindHarm:
		return CategoryHarm
	case KindResentment:
		return CategoryResentment
	default:
		return CategoryVoid
	}
}

// Hit is one detected relation.
//
// Positions lists the participating pillars in ascending order; it is nil for
// hits produced by BranchInteractions. Stems or Branches hold the values
// involved in table order. Transform is nil unless the relation carries a
// transform element. Partial marks a triad matched on two of its three branches.
type Hit struct {
	Kind      Kind               `json:"kind"`
	Positions []lexicon.Position `json:"positions,omitempty"`
	Stems     []lexicon.Stem     `json:"stems,omitempty"`
	Branches  []lexicon.Branch   `json:"branches,omitempty"`
	Detail    string             `json:"detail"`
	Transform *lexicon.Element   `json:"transform,omitempty"`
	Partial   bool               `json:"partial,omitempty"`
}

// Counts tallies hits per kind.
func Counts(hits []Hit) map[Kind]int {
	out := make(map[Kind]int, NumKinds)
	for _, h := range hits {
		out[h.Kind]++
	}
	return out
}

// ContainsKind reports whether any hit has kind k.
func ContainsKind(hits []Hit, k Kind) bool {
	for _, h := range hits {
		if h.Kind == k {
			return true
		}
	}
	return false
}
