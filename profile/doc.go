// SPDX-License-Identifier: MIT

// Package profile scores one candidate date against a person's static birth
// profile across six horizons: decade (대운), year (세운), month (월운),
// day (일진), favourable-element alignment (용신) and archetype alignment
// (격국).
//
// What:
//
//	Analyze(Input) returns six SubAnalysis values. Each starts from a
//	neutral 50, accumulates named factor deltas, and is clamped to [15,95].
//	FactorKeys lists the contributing factors in the order they fired
//	("용신운", "육합", "천을귀인", ...). Positive and Negative are threshold
//	flags (score ≥ 60 and ≤ 40), not the sign of the delta.
//
//	Derive(pillars, birth, gender) builds a Profile from a natal chart:
//	strength balance → yongsin/kisin, month-branch primary qi → geokguk,
//	DaeunCycles → decade list.
//
// Degradation:
//
//	A profile without decade cycles (or whose cycles do not cover the target
//	age) yields a neutral 50 Daeun with no factors. An empty Yongsin or Kisin
//	list simply contributes nothing.
//
// Errors:
//
//	Analyze never fails. Derive returns ErrInvalidChart for pillars outside
//	the sixty cycle and ErrUnknownGender for an unset gender.
package profile
