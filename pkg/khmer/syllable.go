package khmer

import "strings"

// Slot indexes a position of a Syllable. Slots are listed in canonical
// encoding order, so serializing a syllable is a walk from SlotBase to
// SlotFinal.
type Slot int

const (
	SlotBase Slot = iota
	SlotRobat
	SlotCoengA
	SlotConsonantA
	SlotCoengB
	SlotConsonantB
	SlotShifter
	SlotVowel
	SlotModifier
	SlotFinal

	NumSlots = 10
)

// Syllable accumulates one syllable in canonical slot order.
// The zero value is an empty (closed) syllable.
type Syllable struct {
	slots [NumSlots]rune
	// second modifying mark, only filled when two modifier slots are enabled
	modifier2 rune
}

// Open reports whether the syllable has a base.
func (s *Syllable) Open() bool {
	return s.slots[SlotBase] != 0
}

// Get returns the rune in slot i, or 0 if the slot is empty.
func (s *Syllable) Get(i Slot) rune {
	return s.slots[i]
}

func (s *Syllable) empty(i Slot) bool {
	return s.slots[i] == 0
}

// put fills slot i if it is empty.
func (s *Syllable) put(i Slot, r rune) bool {
	if s.slots[i] != 0 {
		return false
	}
	s.slots[i] = r
	return true
}

// putPair fills a coeng marker slot and the consonant slot that follows it.
func (s *Syllable) putPair(marker Slot, coeng, consonant rune) bool {
	if s.slots[marker] != 0 {
		return false
	}
	s.slots[marker] = coeng
	s.slots[marker+1] = consonant
	return true
}

func (s *Syllable) putModifier(r rune, wide bool) bool {
	if s.put(SlotModifier, r) {
		return true
	}
	if wide && s.modifier2 == 0 {
		s.modifier2 = r
		return true
	}
	return false
}

// AppendTo writes the non-empty slots in index order to sb.
func (s *Syllable) AppendTo(sb *strings.Builder) {
	for i, r := range s.slots {
		if r != 0 {
			sb.WriteRune(r)
		}
		if Slot(i) == SlotModifier && s.modifier2 != 0 {
			sb.WriteRune(s.modifier2)
		}
	}
}

// String returns the syllable in canonical order.
func (s *Syllable) String() string {
	var sb strings.Builder
	sb.Grow(NumSlots * 3)
	s.AppendTo(&sb)
	return sb.String()
}

// Reset empties every slot.
func (s *Syllable) Reset() {
	*s = Syllable{}
}
