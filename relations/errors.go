// SPDX-License-Identifier: MIT

package relations

import "errors"

var (
	// ErrUnknownClashMode indicates a heavenly clash mode other than "4" or "5".
	ErrUnknownClashMode = errors.New("relations: unknown heavenly clash mode")

	// ErrUnknownGongmangPolicy indicates an unsupported void basis name.
	ErrUnknownGongmangPolicy = errors.New("relations: unknown gongmang policy")
)
