// SPDX-License-Identifier: MIT

package lexicon

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NormalizeStem maps a Korean or Chinese stem token onto its Hanja form.
// Unrecognized tokens are returned unchanged.
func NormalizeStem(token string) string {
	if s, ok := stemAliases[strings.TrimSpace(token)]; ok {
		return s.String()
	}
	return token
}

// NormalizeBranch maps a Korean or Chinese branch token onto its Hanja form.
// Unrecognized tokens are returned unchanged.
func NormalizeBranch(token string) string {
	if b, ok := branchAliases[strings.TrimSpace(token)]; ok {
		return b.String()
	}
	return token
}

// Normalize maps a stem or branch token onto its Hanja form, trying stems
// first. The syllable "신" is therefore read as 辛; use NormalizeBranch when
// the token is known to be a branch. Unrecognized tokens pass through
// unchanged and simply match nothing downstream.
func Normalize(token string) string {
	t := strings.TrimSpace(token)
	if s, ok := stemAliases[t]; ok {
		return s.String()
	}
	if b, ok := branchAliases[t]; ok {
		return b.String()
	}
	return token
}

// ParseStem parses a Korean or Chinese stem token.
func ParseStem(token string) (Stem, error) {
	if s, ok := stemAliases[strings.TrimSpace(token)]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("stem %q: %w", token, ErrUnrecognizedToken)
}

// ParseBranch parses a Korean or Chinese branch token.
func ParseBranch(token string) (Branch, error) {
	if b, ok := branchAliases[strings.TrimSpace(token)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("branch %q: %w", token, ErrUnrecognizedToken)
}

// ParsePillar parses a two-character pillar such as "甲子" or "갑자".
// Pairs whose polarities differ never occur in the sixty cycle and are
// rejected with ErrPolarityMismatch.
func ParsePillar(token string) (Pillar, error) {
	t := strings.TrimSpace(token)
	if utf8.RuneCountInString(t) != 2 {
		return Pillar{}, fmt.Errorf("pillar %q: %w", token, ErrUnrecognizedToken)
	}
	first, size := utf8.DecodeRuneInString(t)
	s, err := ParseStem(string(first))
	if err != nil {
		return Pillar{}, err
	}
	b, err := ParseBranch(t[size:])
	if err != nil {
		return Pillar{}, err
	}
	if s.Polarity() != b.Polarity() {
		return Pillar{}, fmt.Errorf("pillar %q: %w", token, ErrPolarityMismatch)
	}
	return Pillar{Stem: s, Branch: b}, nil
}

// ParseFourPillars parses "甲子 乙丑 丙寅 丁卯" (year month day time).
// Pillars may be separated by spaces, commas or slashes.
func ParseFourPillars(s string) (FourPillars, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '\t'
	})
	if len(fields) != NumPositions {
		return FourPillars{}, fmt.Errorf("got %d: %w", len(fields), ErrBadPillarCount)
	}
	var out [NumPositions]Pillar
	for i, f := range fields {
		p, err := ParsePillar(f)
		if err != nil {
			return FourPillars{}, fmt.Errorf("%s pillar: %w", Position(i), err)
		}
		out[i] = p
	}
	return FourPillars{Year: out[0], Month: out[1], Day: out[2], Time: out[3]}, nil
}
