// SPDX-License-Identifier: MIT

// Package relations detects the symbolic relationships (합충형파해) among the
// four pillars of a chart.
//
// What:
//
//	Analyze(pillars, opts...) returns every active relation as a typed Hit.
//	Families:
//	  • heavenly combination  — 甲己 乙庚 丙辛 丁壬 戊癸, optional transform note
//	  • heavenly clash        — 4-pair table, or the 5-pair superset (ClashMode5)
//	  • six-combination       — 子丑 寅亥 卯戌 辰酉 巳申 午未
//	  • three-combination     — 申子辰 亥卯未 寅午戌 巳酉丑, fires on ≥2 of 3
//	  • clash                 — 子午 丑未 寅申 卯酉 辰戌 巳亥
//	  • punishment            — 寅巳申 / 丑戌未 (≥2 of 3), 子卯, self 辰午酉亥 (repeated)
//	  • break, harm, resentment — symmetric pair tables
//	  • void (공망)            — branches void relative to the day (or year) pillar
//
// Determinism:
//
//	Hits are sorted by Kind, then by positions, then by detail. Identical
//	input yields an identical slice on every call.
//
// Options:
//
//	Category toggles (IncludeHeavenly, IncludeEarthly, IncludeGongmang) gate
//	emission only; detection always runs underneath. See DefaultOptions.
//
// Errors:
//
//	Analyze never fails: out-of-range stems or branches match nothing.
//	ParseClashMode / ParseGongmangPolicy return ErrUnknownClashMode /
//	ErrUnknownGongmangPolicy for configuration strings.
//
// Complexity: O(1); a chart has four pillars and every table is fixed.
package relations
