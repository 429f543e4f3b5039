// SPDX-License-Identifier: MIT

package relations

import (
	"fmt"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// GongmangPolicy selects which pillar's decad defines the void branches.
type GongmangPolicy uint8

const (
	// GongmangDay uses the day pillar (the common reading).
	GongmangDay GongmangPolicy = iota
	// GongmangYear uses the year pillar.
	GongmangYear
	// GongmangDayAndYear reports voids relative to both.
	GongmangDayAndYear
)

var policyNames = [...]string{"day", "year", "both"}

// String returns "day", "year" or "both".
func (p GongmangPolicy) String() string {
	if int(p) >= len(policyNames) {
		return "policy(?)"
	}
	return policyNames[p]
}

// ParseGongmangPolicy resolves "day", "year" or "both".
func ParseGongmangPolicy(s string) (GongmangPolicy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return GongmangPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownGongmangPolicy)
}

// ParseClashMode resolves "4" or "5".
func ParseClashMode(s string) (lexicon.ClashMode, error) {
	switch strings.TrimSpace(s) {
	case "4":
		return lexicon.ClashMode4, nil
	case "5":
		return lexicon.ClashMode5, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownClashMode)
}

// Defaults used by DefaultOptions.
const (
	DefaultIncludeHeavenly              = true
	DefaultIncludeEarthly               = true
	DefaultIncludeGongmang              = true
	DefaultIncludeSelfPunish            = true
	DefaultIncludeHeavenlyTransformNote = false
	DefaultGongmangPolicy               = GongmangDay
	DefaultHeavenlyClashMode            = lexicon.ClashMode4
)

// Options toggles the families reported by Analyze.
//
// IncludeHeavenly / IncludeEarthly / IncludeGongmang gate emission of stem,
// branch and void hits. IncludeSelfPunish enables 자형 for repeated
// 辰午酉亥. IncludeHeavenlyTransformNote annotates heavenly combinations with
// their transform element.
type Options struct {
	IncludeHeavenly              bool
	IncludeEarthly               bool
	IncludeGongmang              bool
	IncludeSelfPunish            bool
	IncludeHeavenlyTransformNote bool
	GongmangPolicy               GongmangPolicy
	HeavenlyClashMode            lexicon.ClashMode
}

// DefaultOptions returns every family enabled, day-pillar voids, mode 4
// heavenly clashes and no transform note.
func DefaultOptions() Options {
	return Options{
		IncludeHeavenly:              DefaultIncludeHeavenly,
		IncludeEarthly:               DefaultIncludeEarthly,
		IncludeGongmang:              DefaultIncludeGongmang,
		IncludeSelfPunish:            DefaultIncludeSelfPunish,
		IncludeHeavenlyTransformNote: DefaultIncludeHeavenlyTransformNote,
		GongmangPolicy:               DefaultGongmangPolicy,
		HeavenlyClashMode:            DefaultHeavenlyClashMode,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithHeavenly toggles heavenly-stem hits.
func WithHeavenly(on bool) Option {
	return func(o *Options) { o.IncludeHeavenly = on }
}

// WithEarthly toggles earthly-branch hits.
func WithEarthly(on bool) Option {
	return func(o *Options) { o.IncludeEarthly = on }
}

// WithGongmang toggles void hits.
func WithGongmang(on bool) Option {
	return func(o *Options) { o.IncludeGongmang = on }
}

// WithSelfPunish toggles 자형 detection.
func WithSelfPunish(on bool) Option {
	return func(o *Options) { o.IncludeSelfPunish = on }
}

// WithTransformNote annotates heavenly combinations with their element.
func WithTransformNote() Option {
	return func(o *Options) { o.IncludeHeavenlyTransformNote = true }
}

// WithGongmangPolicy selects the void basis. Panics on an unknown policy.
func WithGongmangPolicy(p GongmangPolicy) Option {
	if int(p) >= len(policyNames) {
		panic("relations: WithGongmangPolicy: unknown policy")
	}
	return func(o *Options) { o.GongmangPolicy = p }
}

// WithClashMode selects the heavenly clash table. Panics on an unknown mode.
func WithClashMode(m lexicon.ClashMode) Option {
	if m != lexicon.ClashMode4 && m != lexicon.ClashMode5 {
		panic("relations: WithClashMode: unknown mode")
	}
	return func(o *Options) { o.HeavenlyClashMode = m }
}

// gatherOptions applies opts over the defaults, last wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
