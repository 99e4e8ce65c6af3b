package khmer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// cleanTable holds the Khmer block plus Unicode white space.
var cleanTable = rangetable.Merge(
	&unicode.RangeTable{
		R16: []unicode.Range16{{Lo: khmerStart, Hi: khmerEnd, Stride: 1}},
	},
	unicode.White_Space,
)

// Clean removes every character that is neither in the Khmer block nor
// white space. Corpus lines are usually cleaned before sorting.
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(cleanTable, r) {
			return r
		}
		return -1
	}, text)
}
