// SPDX-License-Identifier: MIT

// Package lexicon holds the immutable calendrical tables of the saju engine:
// heavenly stems, earthly branches, the five elements, yin-yang polarity,
// hidden sub-stems, nobility stars, the relation-family pair tables, the
// ten relational roles (sibsin), the twelve life-cycle stages and the
// sixty-pair (ganzhi) cycle with its void branches.
//
// What:
//
//   - Stem (10) and Branch (12) are closed enums; every lookup is an array
//     index, so exhaustiveness is checked by the table sizes at compile time.
//   - Element cycles: Generates / Controls / RelationOf.
//   - SibsinOf(dayMaster, other) is total over 10×10 and maps self to 비견.
//   - CycleAt / CycleIndex convert between a 0..59 index and a Pillar with
//     modulo wraparound (60 → 0, −1 → 59).
//   - VoidBranches returns the two 공망 branches of the pillar's decad.
//
// Parsing:
//
//   - Normalize maps Korean syllables and Chinese characters onto the
//     canonical Hanja form and passes anything else through unchanged.
//   - ParseStem / ParseBranch / ParsePillar are the strict boundary
//     variants and return ErrUnrecognizedToken for unknown input.
//
// Concurrency:
//
//	All tables are package-level values built at init and never mutated.
//	Every exported function is safe for concurrent use without locking.
//
// Complexity:
//
//	Every lookup is O(1); SpecialStars is O(4).
package lexicon
