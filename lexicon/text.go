// SPDX-License-Identifier: MIT

package lexicon

import "fmt"

// Text forms for JSON/YAML output. Stems and branches round-trip through
// their Hanja; elements through their English name.

// MarshalText implements encoding.TextMarshaler.
func (s Stem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts Korean or Chinese aliases.
func (s *Stem) UnmarshalText(b []byte) error {
	v, err := ParseStem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText accepts Korean or Chinese aliases.
func (b *Branch) UnmarshalText(p []byte) error {
	v, err := ParseBranch(string(p))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pillar) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses a two-character pillar.
func (p *Pillar) UnmarshalText(b []byte) error {
	v, err := ParsePillar(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText accepts "wood", "목" or "木" (and the other four phases).
func (e *Element) UnmarshalText(b []byte) error {
	v, ok := ParseElement(string(b))
	if !ok {
		return fmt.Errorf("element %q: %w", string(b), ErrUnrecognizedToken)
	}
	*e = v
	return nil
}

// ParseElement resolves an English, Korean or Chinese element name.
func ParseElement(s string) (Element, bool) {
	for i := 0; i < NumElements; i++ {
		if s == elementNames[i] || s == elementKorean[i] || s == elementHanja[i] {
			return Element(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (s Sibsin) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseSibsin resolves a Korean role name such as "정관".
func ParseSibsin(s string) (Sibsin, bool) {
	for i, n := range sibsinNames {
		if n == s {
			return Sibsin(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (t StarType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (e Energy) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
