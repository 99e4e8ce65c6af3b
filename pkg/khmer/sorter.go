package khmer

import "strings"

// Mode selects the output view of a scan.
type Mode uint8

const (
	// ModeMerge concatenates every unit into one string.
	ModeMerge Mode = iota
	// ModeSegment returns every syllable or standalone character as its own unit.
	ModeSegment
)

// OrphanPolicy decides what happens to a combining mark that has no base.
type OrphanPolicy uint8

const (
	// OrphanDrop discards the mark.
	OrphanDrop OrphanPolicy = iota
	// OrphanPassThrough emits the mark unchanged as a standalone unit.
	OrphanPassThrough
)

// Result holds the output of Run. Text is set in ModeMerge, Units in ModeSegment.
type Result struct {
	Mode  Mode
	Text  string
	Units []string
}

// String returns the merged view of r regardless of its mode.
func (r Result) String() string {
	if r.Mode == ModeSegment {
		return strings.Join(r.Units, "")
	}
	return r.Text
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithOrphanMarks sets the policy for combining marks without a base.
func WithOrphanMarks(p OrphanPolicy) Option {
	return func(s *Sorter) {
		s.orphans = p
	}
}

// WithModifierSlots sets how many modifying marks a syllable keeps.
// One slot (the default) flushes the syllable on a second mark; two slots keep
// both marks in arrival order. Other values are clamped to that range.
func WithModifierSlots(n int) Option {
	return func(s *Sorter) {
		s.wideModifiers = n >= 2
	}
}

// Sorter reorders Khmer text into canonical syllable order.
// A Sorter is immutable once built and safe for concurrent use.
type Sorter struct {
	orphans       OrphanPolicy
	wideModifiers bool
}

// NewSorter creates a Sorter with the given options.
func NewSorter(opts ...Option) *Sorter {
	s := &Sorter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run scans input once and returns the view selected by mode.
func (s *Sorter) Run(input []rune, mode Mode) Result {
	res := Result{Mode: mode}
	if mode == ModeSegment {
		units := make([]string, 0, len(input)/2+1)
		a := s.newAssembler(func(unit string) {
			units = append(units, unit)
		})
		a.scan(input)
		res.Units = units
		return res
	}

	var sb strings.Builder
	sb.Grow(len(input) * 3)
	a := s.newAssembler(func(unit string) {
		sb.WriteString(unit)
	})
	a.scan(input)
	res.Text = sb.String()
	return res
}

// Sort returns text with every syllable in canonical order. Numerals and
// punctuation stay in place; separators and orphaned marks are removed.
func (s *Sorter) Sort(text string) string {
	return s.Run([]rune(text), ModeMerge).Text
}

// Segment splits text into reordered syllables and standalone characters.
// Joining the result gives exactly Sort(text).
func (s *Sorter) Segment(text string) []string {
	return s.Run([]rune(text), ModeSegment).Units
}

var defaultSorter = NewSorter()

// Sort reorders text with the default options.
func Sort(text string) string {
	return defaultSorter.Sort(text)
}

// Segment segments text with the default options.
func Segment(text string) []string {
	return defaultSorter.Segment(text)
}

// noRune marks the absence of a lookahead character.
const noRune rune = -1

// assembler is the syllable state machine. It owns one buffer and hands
// every finished unit to emit.
type assembler struct {
	syl         Syllable
	wide        bool
	passOrphans bool
	emit        func(string)
}

func (s *Sorter) newAssembler(emit func(string)) *assembler {
	return &assembler{
		wide:        s.wideModifiers,
		passOrphans: s.orphans == OrphanPassThrough,
		emit:        emit,
	}
}

func (a *assembler) scan(input []rune) {
	n := len(input)
	for i := 0; i < n; i++ {
		next := noRune
		if i+1 < n {
			next = input[i+1]
		}
		i += a.step(input[i], next)
	}
	a.flush()
}

// step consumes r, peeking at next for coeng pairs. It returns the number
// of lookahead runes consumed along with r (0 or 1).
func (a *assembler) step(r, next rune) int {
	role := Classify(r)
	switch role {
	case ZeroWidthSpace:
		return 0
	case Consonant, IndependentVowel:
		a.flush()
		a.syl.slots[SlotBase] = r
		return 0
	case Numeral, Punctuation:
		a.flush()
		a.emit(string(r))
		return 0
	}

	if !a.syl.Open() {
		// Separator or orphaned mark
		if a.passOrphans && role.combining() {
			a.emit(string(r))
		}
		return 0
	}

	placed, consumed := a.place(role, r, next)
	if !placed {
		a.flush()
		a.emit(string(r))
	}
	return consumed
}

// place puts r into its slot of the open syllable.
// A Coeng that is not followed by a consonant is not placed: the caller
// flushes and emits it alone, so marks after it find no open syllable and
// are lost as orphans.
func (a *assembler) place(role Role, r, next rune) (placed bool, consumed int) {
	syl := &a.syl
	switch role {
	case Robat:
		return syl.put(SlotRobat, r), 0
	case Coeng:
		if Classify(next) != Consonant {
			return false, 0
		}
		// Subscript RO is always encoded last.
		marker := SlotCoengB
		if syl.empty(SlotCoengA) && next != RO {
			marker = SlotCoengA
		}
		if syl.putPair(marker, r, next) {
			return true, 1
		}
		return false, 0
	case Shifter:
		return syl.put(SlotShifter, r), 0
	case DependentVowel:
		return syl.put(SlotVowel, r), 0
	case Diacritic:
		return syl.putModifier(r, a.wide), 0
	case Final:
		return syl.put(SlotFinal, r), 0
	}
	return false, 0
}

// flush emits the open syllable, if any, and empties the buffer.
func (a *assembler) flush() {
	if !a.syl.Open() {
		return
	}
	a.emit(a.syl.String())
	a.syl.Reset()
}
