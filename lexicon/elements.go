// SPDX-License-Identifier: MIT

package lexicon

// ElementRelation classifies how one element stands to a subject element.
type ElementRelation uint8

const (
	// RelSame: both are the same phase (비화).
	RelSame ElementRelation = iota
	// RelGenerates: the other element feeds the subject (생 받음).
	RelGenerates
	// RelGeneratedBy: the subject feeds the other element (설기).
	RelGeneratedBy
	// RelControls: the other element restrains the subject (극 받음).
	RelControls
	// RelControlledBy: the subject restrains the other element.
	RelControlledBy
)

var relationNames = [...]string{"same", "generates", "generated-by", "controls", "controlled-by"}

// String returns a stable English label.
func (r ElementRelation) String() string {
	if int(r) >= len(relationNames) {
		return "relation(?)"
	}
	return relationNames[r]
}

// Generates returns the element fed by e: wood→fire→earth→metal→water→wood.
func Generates(e Element) Element { return (e + 1) % NumElements }

// Controls returns the element restrained by e: wood→earth→water→fire→metal→wood.
func Controls(e Element) Element { return (e + 2) % NumElements }

// GeneratedBy returns the element that feeds e.
func GeneratedBy(e Element) Element { return (e + NumElements - 1) % NumElements }

// ControlledBy returns the element that restrains e.
func ControlledBy(e Element) Element { return (e + NumElements - 2) % NumElements }

// RelationOf reports how other stands to subject. Read it as
// "other <relation> subject": RelGenerates means other feeds subject.
func RelationOf(subject, other Element) ElementRelation {
	switch other {
	case subject:
		return RelSame
	case GeneratedBy(subject):
		return RelGenerates
	case Generates(subject):
		return RelGeneratedBy
	case ControlledBy(subject):
		return RelControls
	default:
		return RelControlledBy
	}
}
