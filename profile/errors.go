// SPDX-License-Identifier: MIT

package profile

import "errors"

var (
	// ErrInvalidChart indicates a natal chart with a pillar outside the
	// sixty-pair cycle.
	ErrInvalidChart = errors.New("profile: chart has an invalid pillar")

	// ErrUnknownGender indicates a gender other than Male or Female, which
	// leaves the decade direction undefined.
	ErrUnknownGender = errors.New("profile: unknown gender")
)
