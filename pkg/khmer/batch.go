package khmer

// SegmentMany segments every unit independently and flattens the tokens into
// one slice, keeping their relative order. Unit boundaries are not kept;
// callers that need them should segment units one at a time.
func (s *Sorter) SegmentMany(units []string) []string {
	n := 0
	for _, u := range units {
		n += len(u)
	}
	out := make([]string, 0, n/3+1)
	for _, u := range units {
		a := s.newAssembler(func(unit string) {
			out = append(out, unit)
		})
		a.scan([]rune(u))
	}
	return out
}

// SegmentMany segments units with the default options.
func SegmentMany(units []string) []string {
	return defaultSorter.SegmentMany(units)
}
