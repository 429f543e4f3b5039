// SPDX-License-Identifier: MIT

package window

import "errors"

var (
	// ErrInvertedRange indicates an end date before the start date.
	ErrInvertedRange = errors.New("window: end date precedes start date")

	// ErrUnknownEvent indicates an event name outside EventType.
	ErrUnknownEvent = errors.New("window: unknown event type")

	// ErrBadConditions indicates a condition table that cannot be used.
	ErrBadConditions = errors.New("window: invalid condition table")
)
