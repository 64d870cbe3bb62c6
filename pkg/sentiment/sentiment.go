// Package sentiment defines the text polarity scoring contract used across
// the agents, a self-contained lexicon scorer, and aggregation over batches
// of documents.
package sentiment

import "math"

// Label classification thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Result is one polarity measurement: a compound score in [-1, 1] plus the
// positive/negative/neutral proportions of the input.
type Result struct {
	Compound float64 `json:"compound"`
	Pos      float64 `json:"pos"`
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Label    string  `json:"label"`
}

// Neutral is the result assigned to empty or unanalyzable text.
func Neutral() Result {
	return Result{Compound: 0, Pos: 0, Neg: 0, Neu: 1, Label: LabelNeutral}
}

// LabelFor maps a compound score to its coarse label.
func LabelFor(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Scorer maps free text to a polarity result. Implementations must treat
// empty input as neutral rather than an error.
type Scorer interface {
	Score(text string) (Result, error)
}

// round3 rounds to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
