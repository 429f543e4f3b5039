// SPDX-License-Identifier: MIT

package calendar

import (
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// Calendar supplies the day, month and year pillars for a date.
type Calendar interface {
	DayPillar(t time.Time) lexicon.Pillar
	MonthPillar(t time.Time) lexicon.Pillar
	YearPillar(year int) lexicon.Pillar
}

// Solar is the default Calendar built on solar-term month boundaries.
type Solar struct{}

var _ Calendar = Solar{}

// DayPillar implements Calendar.
func (Solar) DayPillar(t time.Time) lexicon.Pillar { return DayPillar(t) }

// MonthPillar implements Calendar.
func (Solar) MonthPillar(t time.Time) lexicon.Pillar { return MonthPillar(t) }

// YearPillar implements Calendar.
func (Solar) YearPillar(year int) lexicon.Pillar { return YearPillar(year) }

const (
	// dayAnchorIndex is the cycle index of the anchor date 1900-01-01 (甲戌).
	dayAnchorIndex = 10
	// yearAnchor is a 甲子 year.
	yearAnchor = 1984
)

var dayAnchor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// civilDay truncates t to its calendar date in t's own location and
// re-expresses it as UTC midnight so that day arithmetic ignores DST.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (b − a).
func DaysBetween(a, b time.Time) int {
	return int((civilDay(b).Unix() - civilDay(a).Unix()) / secondsPerDay)
}

// DayPillar returns the day pillar of t's calendar date.
func DayPillar(t time.Time) lexicon.Pillar {
	return lexicon.CycleAt(dayAnchorIndex + DaysBetween(dayAnchor, t))
}

// YearPillar returns the pillar of a (saju) year.
func YearPillar(year int) lexicon.Pillar {
	return lexicon.CycleAt(year - yearAnchor)
}

// SajuYear returns the year whose pillar governs t: the Gregorian year,
// minus one before 입춘.
func SajuYear(t time.Time) int {
	y := t.Year()
	if t.Month() <= time.February && monthOrdinal(t) >= 10 {
		y--
	}
	return y
}

// monthOrdinal returns 0 for the 寅 month (from 입춘) through 11 for the
// 丑 month (from 소한).
func monthOrdinal(t time.Time) int {
	lon := SolarLongitude(t)
	return int(normDeg(lon-springStart) / 30)
}

// MonthPillar returns the solar-term month pillar containing t.
func MonthPillar(t time.Time) lexicon.Pillar {
	n := monthOrdinal(t)
	b := lexicon.Branch((int(lexicon.BranchIn) + n) % lexicon.NumBranches)
	return MonthPillarFor(YearPillar(SajuYear(t)).Stem, b)
}

// MonthPillarFor returns the month pillar with branch b in a year whose stem
// is yearStem (五虎遁: the 寅 month of a 甲 or 己 year is 丙寅).
func MonthPillarFor(yearStem lexicon.Stem, b lexicon.Branch) lexicon.Pillar {
	n := (int(b%lexicon.NumBranches) - int(lexicon.BranchIn) + lexicon.NumBranches) % lexicon.NumBranches
	first := (int(yearStem)%5*2 + 2) % lexicon.NumStems
	return lexicon.Pillar{Stem: lexicon.Stem((first + n) % lexicon.NumStems), Branch: b}
}

// HourPillar returns the hour pillar for a day stem and a clock hour 0..23.
func HourPillar(dayStem lexicon.Stem, hour int) lexicon.Pillar {
	b := ((hour + 1) / 2) % lexicon.NumBranches
	first := int(dayStem) % 5 * 2
	return lexicon.Pillar{
		Stem:   lexicon.Stem((first + b) % lexicon.NumStems),
		Branch: lexicon.Branch(b),
	}
}

// Chart returns the four pillars of a birth instant. From 23:00 the day
// pillar (and therefore the hour stem) already belongs to the next day.
func Chart(birth time.Time) lexicon.FourPillars {
	dayRef := birth
	if birth.Hour() >= 23 {
		dayRef = birth.AddDate(0, 0, 1)
	}
	day := DayPillar(dayRef)
	return lexicon.FourPillars{
		Year:  YearPillar(SajuYear(birth)),
		Month: MonthPillar(birth),
		Day:   day,
		Time:  HourPillar(day.Stem, birth.Hour()),
	}
}
