package khmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Hello ខ្ញុំ 123!", " ខ្ញុំ "},
		{"សួស្តី។\tបង\n", "សួស្តី។\tបង\n"},
		{"(២០២៤) ឆ្នាំ", "២០២៤ ឆ្នាំ"},
		// zero width space is not white space
		{"ក\u200bខ", "កខ"},
		// no-break space is
		{"\u00a0ក", "\u00a0ក"},
		// Khmer Symbols block is outside the main block
		{"\u19e0 symbols block", "  "},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Clean(c.in), "%q", c.in)
	}
}

func TestCleanThenSort(t *testing.T) {
	assert.Equal(t, []string{"ក្ត្រ", " ", "១"}, Segment(Clean("ក្រ្ត abc ១")))
}
