// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
	"github.com/pppaal/saju-astro-chat-sub036/profile"
	"github.com/pppaal/saju-astro-chat-sub036/relations"
)

// Conditions is the favourable-condition table of one event: how the six
// horizons are weighted, and the score deltas for the day's elements, the
// sibsin role of its stem, its relation categories with the natal day
// pillar and the special stars it carries.
type Conditions struct {
	Weights   [profile.NumHorizons]float64
	Elements  map[lexicon.Element]int
	Sibsin    map[lexicon.Sibsin]int
	Relations map[relations.Category]int
	Stars     map[string]int
}

// Empty reports whether no horizon carries a positive weight.
func (c Conditions) Empty() bool {
	for _, w := range c.Weights {
		if w > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (c Conditions) Clone() Conditions {
	c.Elements = maps.Clone(c.Elements)
	c.Sibsin = maps.Clone(c.Sibsin)
	c.Relations = maps.Clone(c.Relations)
	c.Stars = maps.Clone(c.Stars)
	return c
}

// knownStars are the star names a table may reference.
var knownStars = map[string]bool{
	lexicon.StarNobility:     true,
	lexicon.StarTravel:       true,
	lexicon.StarPeachBlossom: true,
	lexicon.StarCanopy:       true,
	lexicon.StarYangBlade:    true,
}

type (
	sib = lexicon.Sibsin
	cat = relations.Category
)

// defaults holds the built-in table. Weight order: daeun, seun, wolun,
// iljin, yongsin, geokguk.
var defaults = [NumEvents]Conditions{
	EventMarriage: {
		Weights:   [profile.NumHorizons]float64{0.10, 0.15, 0.15, 0.35, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Jeongjae: 5, lexicon.Jeonggwan: 5, lexicon.Geopjae: -4, lexicon.Sanggwan: -4},
		Relations: map[cat]int{relations.CategoryCombination: 6, relations.CategoryClash: -8, relations.CategoryPunishment: -5, relations.CategoryResentment: -4, relations.CategoryHarm: -3},
		Stars:     map[string]int{lexicon.StarPeachBlossom: 4, lexicon.StarNobility: 3},
	},
	EventCareer: {
		Weights:   [profile.NumHorizons]float64{0.15, 0.15, 0.15, 0.25, 0.10, 0.20},
		Sibsin:    map[sib]int{lexicon.Jeonggwan: 6, lexicon.Pyeongwan: 3, lexicon.Jeongin: 3, lexicon.Sanggwan: -5},
		Relations: map[cat]int{relations.CategoryCombination: 3, relations.CategoryClash: -5, relations.CategoryPunishment: -3},
		Stars:     map[string]int{lexicon.StarNobility: 4, lexicon.StarTravel: 2},
	},
	EventBusiness: {
		Weights:   [profile.NumHorizons]float64{0.15, 0.20, 0.15, 0.25, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Pyeonjae: 6, lexicon.Jeongjae: 4, lexicon.Siksin: 3, lexicon.Geopjae: -6},
		Relations: map[cat]int{relations.CategoryCombination: 4, relations.CategoryClash: -6, relations.CategoryBreak: -3},
		Stars:     map[string]int{lexicon.StarNobility: 3},
	},
	EventMoving: {
		Weights:   [profile.NumHorizons]float64{0.05, 0.10, 0.15, 0.40, 0.20, 0.10},
		Sibsin:    map[sib]int{lexicon.Jeongin: 3},
		Relations: map[cat]int{relations.CategoryClash: -6, relations.CategoryPunishment: -3, relations.CategoryVoid: -4},
		Stars:     map[string]int{lexicon.StarTravel: 6},
	},
	EventContract: {
		Weights:   [profile.NumHorizons]float64{0.05, 0.15, 0.15, 0.40, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Jeonggwan: 4, lexicon.Jeongjae: 3, lexicon.Geopjae: -4},
		Relations: map[cat]int{relations.CategoryCombination: 5, relations.CategoryClash: -6, relations.CategoryBreak: -4, relations.CategoryVoid: -5},
		Stars:     map[string]int{lexicon.StarNobility: 4},
	},
	EventInvestment: {
		Weights:   [profile.NumHorizons]float64{0.15, 0.20, 0.15, 0.25, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Pyeonjae: 6, lexicon.Jeongjae: 3, lexicon.Geopjae: -6, lexicon.Bigyeon: -2},
		Relations: map[cat]int{relations.CategoryCombination: 3, relations.CategoryClash: -6, relations.CategoryVoid: -4},
		Stars:     map[string]int{lexicon.StarNobility: 3, lexicon.StarYangBlade: -4},
	},
	EventExam: {
		Weights:   [profile.NumHorizons]float64{0.10, 0.15, 0.15, 0.30, 0.10, 0.20},
		Sibsin:    map[sib]int{lexicon.Jeongin: 6, lexicon.Pyeonin: 3, lexicon.Jeonggwan: 3, lexicon.Sanggwan: -3},
		Relations: map[cat]int{relations.CategoryClash: -4, relations.CategoryPunishment: -3},
		Stars:     map[string]int{lexicon.StarCanopy: 4, lexicon.StarNobility: 3},
	},
	EventTravel: {
		Weights:   [profile.NumHorizons]float64{0.05, 0.10, 0.15, 0.45, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Siksin: 3},
		Relations: map[cat]int{relations.CategoryClash: -5, relations.CategoryHarm: -2},
		Stars:     map[string]int{lexicon.StarTravel: 6, lexicon.StarPeachBlossom: 2},
	},
	EventHealth: {
		Weights:   [profile.NumHorizons]float64{0.15, 0.15, 0.15, 0.30, 0.15, 0.10},
		Sibsin:    map[sib]int{lexicon.Jeongin: 4, lexicon.Pyeongwan: -5},
		Relations: map[cat]int{relations.CategoryClash: -6, relations.CategoryPunishment: -6, relations.CategoryHarm: -3},
		Stars:     map[string]int{lexicon.StarNobility: 4, lexicon.StarYangBlade: -4},
	},
}

// DefaultConditions returns a copy of the built-in table for event.
// Unknown events get an empty table.
func DefaultConditions(event EventType) Conditions {
	if !event.Valid() {
		return Conditions{}
	}
	return defaults[event].Clone()
}

// ConditionTable maps every event to its conditions.
type ConditionTable map[EventType]Conditions

// DefaultConditionTable returns the built-in table for every event.
func DefaultConditionTable() ConditionTable {
	t := make(ConditionTable, NumEvents)
	for _, e := range Events() {
		t[e] = DefaultConditions(e)
	}
	return t
}

// For returns the conditions of event, falling back to the defaults.
func (t ConditionTable) For(event EventType) Conditions {
	if c, ok := t[event]; ok {
		return c
	}
	return DefaultConditions(event)
}

// conditionsDoc is the YAML form of one event's overrides.
type conditionsDoc struct {
	Weights   map[string]float64 `yaml:"weights"`
	Elements  map[string]int     `yaml:"elements"`
	Sibsin    map[string]int     `yaml:"sibsin"`
	Relations map[string]int     `yaml:"relations"`
	Stars     map[string]int     `yaml:"stars"`
}

// LoadConditions reads a YAML condition table and layers it over the
// defaults. Each top-level key is an event name; listed weights and deltas
// replace the default entry, everything else is kept:
//
//	marriage:
//	  weights: {iljin: 0.5}
//	  elements: {fire: 3}
//	  sibsin: {정재: 6}
//	  relations: {clash: -10}
//	  stars: {도화: 5}
//
// An empty document yields the defaults.
func LoadConditions(r io.Reader) (ConditionTable, error) {
	var docs map[string]conditionsDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&docs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadConditions, err)
	}

	t := DefaultConditionTable()
	for name, doc := range docs {
		event, err := ParseEventType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadConditions, err)
		}
		c, err := doc.apply(t[event])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadConditions, event, err)
		}
		t[event] = c
	}
	return t, nil
}

func (d conditionsDoc) apply(c Conditions) (Conditions, error) {
	for k, w := range d.Weights {
		h, ok := profile.ParseHorizon(k)
		if !ok {
			return c, fmt.Errorf("unknown horizon %q", k)
		}
		if w < 0 {
			return c, fmt.Errorf("negative weight for %s", h)
		}
		c.Weights[h] = w
	}
	if c.Empty() {
		return c, errors.New("no positive weight")
	}
	if len(d.Elements) > 0 && c.Elements == nil {
		c.Elements = make(map[lexicon.Element]int, len(d.Elements))
	}
	for k, v := range d.Elements {
		el, ok := lexicon.ParseElement(k)
		if !ok {
			return c, fmt.Errorf("unknown element %q", k)
		}
		c.Elements[el] = v
	}
	if len(d.Sibsin) > 0 && c.Sibsin == nil {
		c.Sibsin = make(map[lexicon.Sibsin]int, len(d.Sibsin))
	}
	for k, v := range d.Sibsin {
		s, ok := lexicon.ParseSibsin(k)
		if !ok {
			return c, fmt.Errorf("unknown sibsin %q", k)
		}
		c.Sibsin[s] = v
	}
	if len(d.Relations) > 0 && c.Relations == nil {
		c.Relations = make(map[relations.Category]int, len(d.Relations))
	}
	for k, v := range d.Relations {
		rc, ok := relations.ParseCategory(k)
		if !ok {
			return c, fmt.Errorf("unknown relation category %q", k)
		}
		c.Relations[rc] = v
	}
	if len(d.Stars) > 0 && c.Stars == nil {
		c.Stars = make(map[string]int, len(d.Stars))
	}
	for k, v := range d.Stars {
		if !knownStars[k] {
			return c, fmt.Errorf("unknown star %q", k)
		}
		c.Stars[k] = v
	}
	return c, nil
}
