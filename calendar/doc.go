// SPDX-License-Identifier: MIT

// Package calendar converts Gregorian instants into sexagenary pillars.
//
// What:
//
//   - DayPillar: continuous sixty-day count anchored at 1900-01-01 = 甲戌.
//   - YearPillar / SajuYear: year pillar offset from 1984 = 甲子; the saju
//     year switches at 입춘, not on January 1st.
//   - MonthPillar: the month branch follows the twelve 節 solar terms
//     (입춘 = 寅 month, 경칩 = 卯 month, ...); the stem follows 五虎遁.
//   - HourPillar: two-hour branches with stems from 五鼠遁.
//   - SolarTermAt / NextTerm / PrevTerm: term boundaries from the apparent
//     solar longitude (low-precision series, error well under an hour for
//     years 1900–2100).
//
// Conventions:
//
//   - Dates are read in their own time.Location; callers pass local birth or
//     calendar times. Hour 23 belongs to the next day's 子 hour (조자시).
//   - All functions are pure and safe for concurrent use.
//
// The Calendar interface lets the window scorer accept alternative pillar
// sources; Solar is the default implementation.
package calendar
