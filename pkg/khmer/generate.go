package khmer

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Character inventories used by Generator.
var (
	// consonants of the a-series (first register)
	aSeries = []rune{
		'ក', 'ខ', 'ច', 'ឆ', 'ដ', 'ឋ', 'ណ',
		'ត', 'ថ', 'ប', 'ផ', 'ស', 'ហ', 'អ',
	}
	// consonants of the o-series (second register)
	oSeries = []rune{
		'គ', 'ឃ', 'ង', 'ជ', 'ឈ', 'ញ', 'ឌ',
		'ឍ', 'ទ', 'ធ', 'ន', 'ព', 'ភ', 'ម',
		'យ', 'រ', 'ល', 'វ',
	}
	// LA has no subscript form
	consonantLA = 'ឡ'

	independentVowels = []rune{
		'ឥ', 'ឦ', 'ឧ', 'ឩ', 'ឪ', 'ឫ', 'ឬ',
		'ឭ', 'ឮ', 'ឯ', 'ឰ', 'ឱ', 'ឲ', 'ឳ',
	}
	dependentVowels = []rune{
		'ា', 'ិ', 'ី', 'ឹ', 'ឺ', 'ុ', 'ូ', 'ួ',
		'ើ', 'ឿ', 'ៀ', 'េ', 'ែ', 'ៃ', 'ោ', 'ៅ',
	}
	modifierSigns = []rune{'ំ', '់', '៍', '៎', '៏', '័'}
	finalSigns    = []rune{'ះ', 'ៈ'}

	standaloneSymbols = []rune{
		'០', '១', '២', '៣', '៤', '៥', '៦', '៧', '៨', '៩',
		'។', '៕', '៖', '៘', '៙', '៚', // punctuation
		'ៗ', // LEK TOO
		'៛', // RIEL
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'!', '@', '#', '$', '%', '&', '(', ')', '-', '+', '=', '[', ']', '?',
	}

	baseConsonants  = append(append(append([]rune{}, aSeries...), oSeries...), consonantLA)
	subscriptable   = append(append([]rune{}, aSeries...), oSeries...)
	subscriptableNR = withoutRO(subscriptable)
)

func withoutRO(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if r != RO {
			out = append(out, r)
		}
	}
	return out
}

func contains(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}

// Weights for the random choices of the generator.
var (
	coengCountWeights    = []int{80, 15, 5}
	modifierCountWeights = []int{85, 10, 5}
	kindWeights          = []int{80, 10, 10}
)

const (
	robatChance   = 0.05
	shifterChance = 0.05
	vowelChance   = 0.85
	finalChance   = 0.05
)

// pickWeighted returns an index into weights with probability proportional
// to its weight.
func pickWeighted[W constraints.Integer](rng *rand.Rand, weights []W) int {
	var total W
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	n := W(rng.Int63n(int64(total)))
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// Generator produces random Khmer units that are already in canonical order,
// for building label corpora. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) pick(rs []rune) rune {
	return rs[g.rng.Intn(len(rs))]
}

// Syllable returns a random consonant syllable.
func (g *Generator) Syllable() string {
	base := g.pick(baseConsonants)
	out := []rune{base}

	if g.rng.Float64() < robatChance {
		return string(append(out, signRobat))
	}

	switch pickWeighted(g.rng, coengCountWeights) {
	case 1:
		out = append(out, signCoeng, g.pick(subscriptable))
	case 2:
		// RO may only come second
		out = append(out, signCoeng, g.pick(subscriptableNR), signCoeng, g.pick(subscriptable))
	}

	if g.rng.Float64() < shifterChance {
		switch {
		case contains(aSeries, base):
			out = append(out, signTriisap)
		case contains(oSeries, base):
			out = append(out, signMuusikatoan)
		}
	}

	if g.rng.Float64() < vowelChance {
		out = append(out, g.pick(dependentVowels))
	}

	for i := pickWeighted(g.rng, modifierCountWeights); i > 0; i-- {
		out = append(out, g.pick(modifierSigns))
	}

	if g.rng.Float64() < finalChance {
		out = append(out, g.pick(finalSigns))
	}
	return string(out)
}

// IndependentVowelCluster returns an independent vowel with one subscript,
// such as ឱ្យ.
func (g *Generator) IndependentVowelCluster() string {
	return string([]rune{g.pick(independentVowels), signCoeng, g.pick(subscriptable)})
}

// Standalone returns a numeral, punctuation mark or ASCII symbol.
func (g *Generator) Standalone() string {
	return string(g.pick(standaloneSymbols))
}

// Next returns a syllable, an independent vowel cluster or a standalone
// symbol, weighted 80/10/10.
func (g *Generator) Next() string {
	switch pickWeighted(g.rng, kindWeights) {
	case 0:
		return g.Syllable()
	case 1:
		return g.IndependentVowelCluster()
	}
	return g.Standalone()
}
