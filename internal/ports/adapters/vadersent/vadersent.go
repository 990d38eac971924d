package vadersent

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Analyzer scores sentiment with the VADER lexicon. Purely local, no I/O.
type Analyzer struct{}

func New() Analyzer { return Analyzer{} }

// Polarity returns the VADER compound score, which lands in [-1, 1].
func (Analyzer) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}
