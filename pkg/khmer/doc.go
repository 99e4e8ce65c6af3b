/*
Package khmer reorders Khmer text into canonical syllable order and splits it
into syllable units.

A Khmer orthographic syllable is encoded as

	Base Robat? Coeng-pair{0,2} Shifter? Vowel? Modifier? Final?

where the subscript pair of RO (U+17D2 U+179A) always comes last among the
coeng pairs. Text typed in another order is rebuilt slot by slot:

	khmer.Sort("កា៌")        // "ក៌ា"
	khmer.Segment("ក្រ្ត១") // ["ក្ត្រ", "១"]

Numerals and punctuation are kept as units of their own. Separators other than
the first one after a syllable, and combining marks without a base, are
dropped. See WithOrphanMarks and WithModifierSlots for the configurable
policies.
*/
package khmer
