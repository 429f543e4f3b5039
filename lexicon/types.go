// SPDX-License-Identifier: MIT

package lexicon

// Element is one of the five phases (오행).
type Element uint8

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// NumElements is the size of the element cycle.
const NumElements = 5

// Elements lists the five phases in generating order.
var Elements = [NumElements]Element{Wood, Fire, Earth, Metal, Water}

var elementHanja = [NumElements]string{"木", "火", "土", "金", "水"}
var elementKorean = [NumElements]string{"목", "화", "토", "금", "수"}
var elementNames = [NumElements]string{"wood", "fire", "earth", "metal", "water"}

// Valid reports whether e is one of the five phases.
func (e Element) Valid() bool { return e < NumElements }

// String returns the lower-case English name ("wood", ...).
func (e Element) String() string {
	if !e.Valid() {
		return "element(?)"
	}
	return elementNames[e]
}

// Hanja returns the Chinese character (木火土金水).
func (e Element) Hanja() string {
	if !e.Valid() {
		return "?"
	}
	return elementHanja[e]
}

// Korean returns the Korean syllable (목화토금수).
func (e Element) Korean() string {
	if !e.Valid() {
		return "?"
	}
	return elementKorean[e]
}

// Polarity is yin or yang (음양).
type Polarity uint8

const (
	Yang Polarity = iota
	Yin
)

// String returns "yang" or "yin".
func (p Polarity) String() string {
	if p == Yang {
		return "yang"
	}
	return "yin"
}

// Stem is one of the ten heavenly stems (천간), ordered 甲..癸.
type Stem uint8

const (
	StemGap    Stem = iota // 甲
	StemEul                // 乙
	StemByeong             // 丙
	StemJeong              // 丁
	StemMu                 // 戊
	StemGi                 // 己
	StemGyeong             // 庚
	StemSin                // 辛
	StemIm                 // 壬
	StemGye                // 癸
)

// NumStems is the number of heavenly stems.
const NumStems = 10

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s < NumStems }

// Element of the stem: two consecutive stems share one phase.
func (s Stem) Element() Element { return Element(s / 2) }

// Polarity of the stem: even index is yang.
func (s Stem) Polarity() Polarity { return Polarity(s % 2) }

// String returns the canonical Hanja form.
func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemHanja[s]
}

// Hanja returns the Chinese character of the stem.
func (s Stem) Hanja() string { return s.String() }

// Korean returns the Korean syllable of the stem.
func (s Stem) Korean() string {
	if !s.Valid() {
		return "?"
	}
	return stemKorean[s]
}

// Branch is one of the twelve earthly branches (지지), ordered 子..亥.
type Branch uint8

const (
	BranchJa   Branch = iota // 子
	BranchChuk               // 丑
	BranchIn                 // 寅
	BranchMyo                // 卯
	BranchJin                // 辰
	BranchSa                 // 巳
	BranchO                  // 午
	BranchMi                 // 未
	BranchSin                // 申
	BranchYu                 // 酉
	BranchSul                // 戌
	BranchHae                // 亥
)

// NumBranches is the number of earthly branches.
const NumBranches = 12

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b < NumBranches }

// Element of the branch.
func (b Branch) Element() Element {
	if !b.Valid() {
		return Earth
	}
	return branchElement[b]
}

// Polarity of the branch: even index is yang.
func (b Branch) Polarity() Polarity { return Polarity(b % 2) }

// String returns the canonical Hanja form.
func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchHanja[b]
}

// Hanja returns the Chinese character of the branch.
func (b Branch) Hanja() string { return b.String() }

// Korean returns the Korean syllable of the branch.
func (b Branch) Korean() string {
	if !b.Valid() {
		return "?"
	}
	return branchKorean[b]
}

// Qi tags a hidden stem by its strength inside the branch.
type Qi uint8

const (
	QiResidual Qi = iota // 여기
	QiMiddle             // 중기
	QiPrimary            // 정기
)

// String returns the Korean term for the qi level.
func (q Qi) String() string {
	switch q {
	case QiResidual:
		return "여기"
	case QiMiddle:
		return "중기"
	default:
		return "정기"
	}
}

// HiddenStem is one sub-stem stored inside a branch (지장간).
type HiddenStem struct {
	Stem Stem
	Qi   Qi
}

// Hidden returns the hidden sub-stems of b ordered residual → middle → primary.
// The returned slice is a copy; callers may modify it.
func (b Branch) Hidden() []HiddenStem {
	if !b.Valid() {
		return nil
	}
	src := hiddenStems[b]
	out := make([]HiddenStem, len(src))
	copy(out, src)
	return out
}

// PrimaryQi returns the 정기 stem of b.
func (b Branch) PrimaryQi() Stem {
	h := hiddenStems[b%NumBranches]
	return h[len(h)-1].Stem
}

// Pillar is a stem-branch pair (간지) naming a year, month, day or hour.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// String renders the pillar as two Hanja characters, e.g. "甲子".
func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

// Korean renders the pillar as two Korean syllables, e.g. "갑자".
func (p Pillar) Korean() string { return p.Stem.Korean() + p.Branch.Korean() }

// Valid reports whether both stem and branch are in range.
func (p Pillar) Valid() bool { return p.Stem.Valid() && p.Branch.Valid() }

// Position names one of the four pillars of a chart.
type Position uint8

const (
	PosYear Position = iota
	PosMonth
	PosDay
	PosTime
)

// NumPositions is the number of pillars in a chart.
const NumPositions = 4

var positionNames = [NumPositions]string{"year", "month", "day", "time"}

// String returns "year", "month", "day" or "time".
func (p Position) String() string {
	if p >= NumPositions {
		return "position(?)"
	}
	return positionNames[p]
}

// FourPillars is one birth or calendar moment (사주).
type FourPillars struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Time  Pillar
}

// At returns the pillar stored at pos.
func (fp FourPillars) At(pos Position) Pillar {
	switch pos {
	case PosYear:
		return fp.Year
	case PosMonth:
		return fp.Month
	case PosDay:
		return fp.Day
	default:
		return fp.Time
	}
}

// Array returns the pillars in year, month, day, time order.
func (fp FourPillars) Array() [NumPositions]Pillar {
	return [NumPositions]Pillar{fp.Year, fp.Month, fp.Day, fp.Time}
}

// Valid reports whether all four pillars hold in-range stems and branches.
func (fp FourPillars) Valid() bool {
	return fp.Year.Valid() && fp.Month.Valid() && fp.Day.Valid() && fp.Time.Valid()
}

// String renders "甲子 乙丑 丙寅 丁卯" (year month day time).
func (fp FourPillars) String() string {
	return fp.Year.String() + " " + fp.Month.String() + " " + fp.Day.String() + " " + fp.Time.String()
}
