// SPDX-License-Identifier: MIT

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub036/calendar"
	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

var seoul = time.FixedZone("KST", 9*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, seoul)
}

// TestDayPillar_Anchors checks the anchor and the well-known 2000-01-01 = 戊午.
func TestDayPillar_Anchors(t *testing.T) {
	assert.Equal(t, "甲戌", calendar.DayPillar(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "戊午", calendar.DayPillar(date(2000, time.January, 1)).String())
	assert.Equal(t, "己未", calendar.DayPillar(date(2000, time.January, 2)).String())
}

// TestDayPillar_Progression verifies consecutive days advance by one index
// and repeat every sixty days, across a DST-observing zone.
func TestDayPillar_Progression(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		ny = time.UTC
	}
	d := time.Date(2024, time.March, 1, 0, 30, 0, 0, ny)
	for i := 0; i < 90; i++ {
		cur, ok := lexicon.CycleIndex(calendar.DayPillar(d))
		require.True(t, ok)
		next, _ := lexicon.CycleIndex(calendar.DayPillar(d.AddDate(0, 0, 1)))
		assert.Equal(t, (cur+1)%lexicon.CycleLength, next, "day after %s", d.Format(time.DateOnly))
		assert.Equal(t, calendar.DayPillar(d), calendar.DayPillar(d.AddDate(0, 0, 60)))
		d = d.AddDate(0, 0, 1)
	}
}

// TestDayPillar_FarRange checks consecutive days still step the cycle by one
// centuries away from the anchor.
func TestDayPillar_FarRange(t *testing.T) {
	for _, y := range []int{1, 1600, 1607, 2192, 2193, 2200, 2300, 9999} {
		d := time.Date(y, time.January, 1, 12, 0, 0, 0, time.UTC)
		cur, ok := lexicon.CycleIndex(calendar.DayPillar(d))
		require.True(t, ok)
		next, _ := lexicon.CycleIndex(calendar.DayPillar(d.AddDate(0, 0, 1)))
		assert.Equal(t, (cur+1)%lexicon.CycleLength, next, "year %d", y)
	}
	assert.Equal(t, 146097, calendar.DaysBetween(
		time.Date(1600, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC)))
	// 400 Gregorian years hold 146097 days, 146097 % 60 = 57.
	a := calendar.DayPillar(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	b := calendar.DayPillar(time.Date(2400, time.January, 1, 0, 0, 0, 0, time.UTC))
	ia, _ := lexicon.CycleIndex(a)
	ib, _ := lexicon.CycleIndex(b)
	assert.Equal(t, (ia+57)%lexicon.CycleLength, ib)
}

// TestYearPillar_Offsets checks the 1984 anchor and the 입춘 switch.
func TestYearPillar_Offsets(t *testing.T) {
	assert.Equal(t, "甲子", calendar.YearPillar(1984).String())
	assert.Equal(t, "甲辰", calendar.YearPillar(2024).String())
	assert.Equal(t, "丙午", calendar.YearPillar(2026).String())
	assert.Equal(t, "庚午", calendar.YearPillar(1990).String())

	assert.Equal(t, 2023, calendar.SajuYear(date(2024, time.January, 20)))
	assert.Equal(t, 2023, calendar.SajuYear(date(2024, time.February, 3)))
	assert.Equal(t, 2024, calendar.SajuYear(date(2024, time.February, 10)))
	assert.Equal(t, 2024, calendar.SajuYear(date(2024, time.December, 25)))
}

// TestMonthPillar_Terms checks solar-term month branches and 五虎遁 stems.
func TestMonthPillar_Terms(t *testing.T) {
	cases := []struct {
		when time.Time
		want string
	}{
		{date(2024, time.March, 15), "丁卯"},
		{date(2024, time.January, 20), "乙丑"},
		{date(2024, time.February, 20), "丙寅"},
		{date(1990, time.May, 17), "辛巳"},
		{date(2026, time.October, 16), "戊戌"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, calendar.MonthPillar(c.when).String(), c.when.Format(time.DateOnly))
	}
}

// TestHourPillar_Rule checks 五鼠遁 stems and the two-hour branches.
func TestHourPillar_Rule(t *testing.T) {
	assert.Equal(t, "甲子", calendar.HourPillar(lexicon.StemGap, 0).String())
	assert.Equal(t, "乙丑", calendar.HourPillar(lexicon.StemGap, 1).String())
	assert.Equal(t, "辛未", calendar.HourPillar(lexicon.StemGap, 13).String())
	assert.Equal(t, "丙子", calendar.HourPillar(lexicon.StemEul, 23).String())
	assert.Equal(t, "壬子", calendar.HourPillar(lexicon.StemGye, 0).String())
}

// TestSolarTermAt_Boundaries checks the 2024 입춘 instant (2024-02-04 17:27 KST) and
// the next/previous term helpers.
func TestSolarTermAt_Boundaries(t *testing.T) {
	want := time.Date(2024, time.February, 4, 17, 27, 0, 0, seoul)

	prev := calendar.PrevTerm(date(2024, time.February, 20))
	assert.WithinDuration(t, want, prev, 2*time.Hour)

	next := calendar.NextTerm(date(2024, time.January, 25))
	assert.WithinDuration(t, want, next, 2*time.Hour)

	term := calendar.SolarTermAt(date(2024, time.February, 20))
	assert.Equal(t, "입춘", term.Name)
	assert.Equal(t, lexicon.BranchIn, term.Branch)
	assert.Equal(t, lexicon.Wood, term.Element)

	lon := calendar.SolarLongitude(want)
	assert.InDelta(t, 315.0, lon, 0.1)
}

// TestChart_LateHour builds a full chart and checks the late-night day switch.
func TestChart_LateHour(t *testing.T) {
	birth := time.Date(1990, time.May, 17, 14, 30, 0, 0, seoul)
	fp := calendar.Chart(birth)
	assert.Equal(t, "庚午", fp.Year.String())
	assert.Equal(t, "辛巳", fp.Month.String())
	assert.Equal(t, calendar.DayPillar(birth), fp.Day)
	assert.Equal(t, lexicon.BranchMi, fp.Time.Branch)
	assert.True(t, fp.Valid())

	late := time.Date(1990, time.May, 17, 23, 30, 0, 0, seoul)
	assert.Equal(t, calendar.DayPillar(late.AddDate(0, 0, 1)), calendar.Chart(late).Day)
	assert.Equal(t, lexicon.BranchJa, calendar.Chart(late).Time.Branch)
}

// TestSolar_ImplementsCalendar checks the default Calendar delegates.
func TestSolar_ImplementsCalendar(t *testing.T) {
	var c calendar.Calendar = calendar.Solar{}
	d := date(2026, time.October, 16)
	assert.Equal(t, calendar.DayPillar(d), c.DayPillar(d))
	assert.Equal(t, calendar.MonthPillar(d), c.MonthPillar(d))
	assert.Equal(t, calendar.YearPillar(2026), c.YearPillar(2026))
	assert.Equal(t, 1, calendar.DaysBetween(d, d.AddDate(0, 0, 1)))
}
