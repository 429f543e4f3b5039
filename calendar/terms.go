// SPDX-License-Identifier: MIT

package calendar

import (
	"math"
	"time"

	"github.com/pppaal/saju-astro-chat-sub036/lexicon"
)

// springStart is the apparent solar longitude of 입춘 in degrees.
const springStart = 315.0

const (
	unixEpochJD   = 2440587.5
	j2000JD       = 2451545.0
	tropicalYear  = 365.242189
	secondsPerDay = 86400.0
	termIters     = 6
)

// termNames holds the twelve 節 terms starting each month, 입춘 first.
var termNames = [12]struct{ korean, hanja string }{
	{"입춘", "立春"}, {"경칩", "驚蟄"}, {"청명", "淸明"}, {"입하", "立夏"},
	{"망종", "芒種"}, {"소서", "小暑"}, {"입추", "立秋"}, {"백로", "白露"},
	{"한로", "寒露"}, {"입동", "立冬"}, {"대설", "大雪"}, {"소한", "小寒"},
}

// SolarTerm is the 節 term that opens the month containing a date.
type SolarTerm struct {
	Name    string
	Hanja   string
	Branch  lexicon.Branch
	Element lexicon.Element
	Start   time.Time
}

// julianDay converts an instant to a Julian day number.
func julianDay(t time.Time) float64 {
	return float64(t.UnixNano())/1e9/secondsPerDay + unixEpochJD
}

// fromJulianDay converts a Julian day number back to a UTC instant.
func fromJulianDay(jd float64) time.Time {
	sec := (jd - unixEpochJD) * secondsPerDay
	whole := math.Floor(sec)
	return time.Unix(int64(whole), int64((sec-whole)*1e9)).UTC()
}

func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func rad(d float64) float64 { return d * math.Pi / 180 }

// SolarLongitude returns the apparent geocentric longitude of the sun at t
// in degrees [0, 360), using the low-precision series of Meeus ch. 25.
func SolarLongitude(t time.Time) float64 {
	T := (julianDay(t) - j2000JD) / 36525
	l0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	m := rad(357.52911 + 35999.05029*T - 0.0001537*T*T)
	c := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(m) +
		(0.019993-0.000101*T)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
	omega := rad(125.04 - 1934.136*T)
	return normDeg(l0 + c - 0.00569 - 0.00478*math.Sin(omega))
}

// crossing finds the instant near guess at which the solar longitude
// equals target, by secant steps on the mean solar motion.
func crossing(target float64, guess time.Time) time.Time {
	jd := julianDay(guess)
	for i := 0; i < termIters; i++ {
		diff := normDeg(target - SolarLongitude(fromJulianDay(jd)))
		if diff > 180 {
			diff -= 360
		}
		jd += diff / 360 * tropicalYear
	}
	return fromJulianDay(jd)
}

// PrevTerm returns the start of the 節 term month containing t.
func PrevTerm(t time.Time) time.Time {
	lon := SolarLongitude(t)
	n := int(normDeg(lon-springStart) / 30)
	target := normDeg(springStart + float64(n)*30)
	back := normDeg(lon-target) / 360 * tropicalYear
	start := crossing(target, t.Add(-time.Duration(back*secondsPerDay)*time.Second))
	if start.After(t) {
		// t sits on the boundary within the series' precision.
		start = t
	}
	return start.In(t.Location())
}

// NextTerm returns the start of the 節 term month following t.
func NextTerm(t time.Time) time.Time {
	lon := SolarLongitude(t)
	n := int(normDeg(lon-springStart) / 30)
	target := normDeg(springStart + float64(n+1)*30)
	ahead := normDeg(target-lon) / 360 * tropicalYear
	next := crossing(target, t.Add(time.Duration(ahead*secondsPerDay)*time.Second))
	if !next.After(t) {
		next = t.Add(time.Second)
	}
	return next.In(t.Location())
}

// SolarTermAt returns the 節 term whose month contains t.
func SolarTermAt(t time.Time) SolarTerm {
	n := monthOrdinal(t)
	b := lexicon.Branch((int(lexicon.BranchIn) + n) % lexicon.NumBranches)
	return SolarTerm{
		Name:    termNames[n].korean,
		Hanja:   termNames[n].hanja,
		Branch:  b,
		Element: b.Element(),
		Start:   PrevTerm(t),
	}
}
