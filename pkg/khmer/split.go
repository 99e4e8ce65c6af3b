package khmer

import (
	"bufio"
	"unicode/utf8"
)

// SplitFunc returns a bufio.SplitFunc that yields the same units as Segment
// over a whole stream. A coeng at the end of the buffered data waits for the
// next rune before it is placed.
//
// The returned function carries the open syllable between calls, so it must
// be given to exactly one Scanner.
func (s *Sorter) SplitFunc() bufio.SplitFunc {
	var pending []string
	a := s.newAssembler(func(unit string) {
		pending = append(pending, unit)
	})

	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		for {
			if len(pending) > 0 {
				unit := pending[0]
				pending = pending[1:]
				return advance, []byte(unit), nil
			}
			if advance >= len(data) {
				if atEOF && a.syl.Open() {
					a.flush()
					continue
				}
				return advance, nil, nil
			}

			rest := data[advance:]
			if !atEOF && !utf8.FullRune(rest) {
				return advance, nil, nil
			}
			r, w := utf8.DecodeRune(rest)

			next, nw := noRune, 0
			if a.syl.Open() && Classify(r) == Coeng {
				after := rest[w:]
				if !atEOF && !utf8.FullRune(after) {
					return advance, nil, nil
				}
				if len(after) > 0 {
					next, nw = utf8.DecodeRune(after)
				}
			}
			if a.step(r, next) == 1 {
				w += nw
			}
			advance += w
		}
	}
}
