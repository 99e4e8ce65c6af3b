package khmer

// Unicode character classification for Khmer syllable structure.
// Khmer Unicode Block: U+1780 - U+17FF

// Role is the structural role of a scalar value inside a Khmer syllable.
type Role uint8

const (
	Other Role = iota // white space, non-Khmer text and unassigned Khmer values
	Consonant
	IndependentVowel
	DependentVowel
	Diacritic
	Final
	Shifter
	Robat
	Coeng
	Punctuation
	Numeral
	ZeroWidthSpace
)

var roleNames = [...]string{
	Other:            "Other",
	Consonant:        "Consonant",
	IndependentVowel: "IndependentVowel",
	DependentVowel:   "DependentVowel",
	Diacritic:        "Diacritic",
	Final:            "Final",
	Shifter:          "Shifter",
	Robat:            "Robat",
	Coeng:            "Coeng",
	Punctuation:      "Punctuation",
	Numeral:          "Numeral",
	ZeroWidthSpace:   "ZeroWidthSpace",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "Role(?)"
}

// Range boundaries of the Khmer block.
const (
	khmerStart = 0x1780
	khmerEnd   = 0x17FF

	consonantFirst = 0x1780
	consonantLast  = 0x17A2

	indepVowelFirst = 0x17A5
	indepVowelLast  = 0x17B3

	depVowelFirst = 0x17B6
	depVowelLast  = 0x17C5

	signNikahit      = 0x17C6
	signBantoc       = 0x17CB
	diacriticFirst   = 0x17CD
	diacriticLast    = 0x17D1
	finalFirst       = 0x17C7
	finalLast        = 0x17C8
	signMuusikatoan  = 0x17C9
	signTriisap      = 0x17CA
	signRobat        = 0x17CC
	signCoeng        = 0x17D2
	punctuationFirst = 0x17D4
	punctuationLast  = 0x17DB
	numeralFirst     = 0x17E0
	numeralLast      = 0x17E9

	zeroWidthSpace = 0x200B
)

// RO is KHMER LETTER RO. Its subscript pair always takes the second coeng position.
const RO rune = 0x179A

// Classify returns the syllable role of r. Every rune has exactly one role.
func Classify(r rune) Role {
	switch {
	case r == zeroWidthSpace:
		return ZeroWidthSpace
	case r < khmerStart || r > khmerEnd:
		return Other
	case r <= consonantLast:
		return Consonant
	case r >= indepVowelFirst && r <= indepVowelLast:
		return IndependentVowel
	case r >= depVowelFirst && r <= depVowelLast:
		return DependentVowel
	case r == signNikahit, r == signBantoc, r >= diacriticFirst && r <= diacriticLast:
		return Diacritic
	case r >= finalFirst && r <= finalLast:
		return Final
	case r == signMuusikatoan, r == signTriisap:
		return Shifter
	case r == signRobat:
		return Robat
	case r == signCoeng:
		return Coeng
	case r >= punctuationFirst && r <= punctuationLast:
		return Punctuation
	case r >= numeralFirst && r <= numeralLast:
		return Numeral
	}
	return Other
}

// IsKhmerChar checks if character is in the Khmer Unicode block
func IsKhmerChar(r rune) bool {
	return r >= khmerStart && r <= khmerEnd
}

// IsConsonant checks if character is a Khmer consonant (U+1780 - U+17A2)
func IsConsonant(r rune) bool {
	return r >= consonantFirst && r <= consonantLast
}

// IsBase reports whether r can open a syllable.
func IsBase(r rune) bool {
	role := Classify(r)
	return role == Consonant || role == IndependentVowel
}

// IsStandalone reports whether r is emitted as a unit of its own.
func IsStandalone(r rune) bool {
	role := Classify(r)
	return role == Numeral || role == Punctuation
}

// IsCombining reports whether r only makes sense attached to a base.
func IsCombining(r rune) bool {
	return Classify(r).combining()
}

func (r Role) combining() bool {
	switch r {
	case DependentVowel, Diacritic, Final, Shifter, Robat, Coeng:
		return true
	}
	return false
}
