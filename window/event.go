// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"strings"
)

// EventType is the life event a window is scored for.
type EventType uint8

const (
	EventMarriage EventType = iota
	EventCareer
	EventBusiness
	EventMoving
	EventContract
	EventInvestment
	EventExam
	EventTravel
	EventHealth
)

// NumEvents is the number of event types.
const NumEvents = 9

var eventNames = [NumEvents]string{
	"marriage", "career", "business", "moving", "contract", "investment", "exam", "travel", "health",
}

// Events returns every event type in declaration order.
func Events() []EventType {
	out := make([]EventType, NumEvents)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}

// String returns the lower-case event name.
func (e EventType) String() string {
	if e >= NumEvents {
		return fmt.Sprintf("event(%d)", e)
	}
	return eventNames[e]
}

// Valid reports whether e is a known event.
func (e EventType) Valid() bool { return e < NumEvents }

// MarshalText implements encoding.TextMarshaler.
func (e EventType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EventType) UnmarshalText(b []byte) error {
	v, err := ParseEventType(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEventType resolves an event name, case-insensitively.
func ParseEventType(s string) (EventType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range eventNames {
		if n == s {
			return EventType(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownEvent)
}
