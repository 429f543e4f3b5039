// SPDX-License-Identifier: MIT

package lexicon

import "errors"

var (
	// ErrUnrecognizedToken indicates that a stem/branch token is neither a
	// Korean syllable nor a Chinese character known to the lexicon.
	ErrUnrecognizedToken = errors.New("lexicon: unrecognized stem/branch token")

	// ErrPolarityMismatch indicates a stem and branch of different polarity;
	// such a pair never occurs in the sixty-pair cycle.
	ErrPolarityMismatch = errors.New("lexicon: stem and branch polarity differ")

	// ErrBadPillarCount indicates a four-pillar string did not hold exactly
	// four pillars.
	ErrBadPillarCount = errors.New("lexicon: expected exactly four pillars")
)
