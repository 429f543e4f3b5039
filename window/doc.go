// SPDX-License-Identifier: MIT

// Package window scores a date range for a life event against a birth
// profile and picks the best days.
//
// What:
//
//	Scorer.Score runs profile.Analyze for every calendar day in the
//	inclusive range, blends the six horizon scores with the event's weight
//	table, adds the event's element / sibsin / relation / star deltas and an
//	optional astrology bonus, and clamps each day to [15,95].
//
//	Days are ranked by score (descending), ties to the earliest date. The
//	top three are BestDays; the period score is their weighted mean
//	(0.5 / 0.3 / 0.2, renormalised over the days available), so a single-day
//	range scores exactly that day. Reasons merge the top days' factor keys,
//	priority terms first (천을귀인, 용신운, 삼합, 육합, 건록), capped at five.
//
// Concurrency:
//
//	Days are computed in parallel (errgroup with SetLimit) and ranked with
//	a stable sort afterwards, so the result does not depend on scheduling.
//	A Scorer is safe for concurrent use; its LRU cache of per-day analyses
//	is shared across calls and events.
//
// Errors:
//
//	ErrInvertedRange when end falls on an earlier calendar day than start.
//	Conditions with no positive weight are a programmer error and panic.
//	LoadConditions wraps ErrBadConditions for malformed YAML tables.
package window
