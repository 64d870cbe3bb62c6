package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// normalization constant for mapping summed valence onto [-1, 1]
const alpha = 15.0

// negations flip the valence of the following sentiment-bearing word.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "cant": true, "dont": true, "doesnt": true, "didnt": true,
	"wont": true, "wouldnt": true, "isnt": true, "arent": true, "wasnt": true,
	"werent": true, "without": true, "hardly": true, "barely": true,
}

// lexicon assigns a valence to sentiment-bearing words common in business
// and financial news. Magnitudes follow the usual [-4, 4] convention.
var lexicon = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "excellent": 2.7, "strong": 2.3, "growth": 1.8,
	"profit": 2.1, "profitable": 2.3, "gain": 1.6, "gains": 1.6, "rally": 1.5,
	"success": 2.7, "successful": 2.8, "win": 2.8, "winning": 2.4, "record": 1.2,
	"beat": 1.4, "beats": 1.4, "exceed": 1.6, "exceeded": 1.6, "exceeding": 1.6,
	"surge": 1.7, "surged": 1.7, "soar": 1.9, "soared": 1.9, "boom": 2.0,
	"improve": 1.7, "improved": 1.8, "improvement": 1.8, "upgrade": 1.5,
	"upgraded": 1.5, "bullish": 2.0, "optimistic": 1.9, "opportunity": 1.6,
	"opportunities": 1.6, "innovative": 1.9, "innovation": 1.8, "leading": 1.4,
	"leader": 1.6, "expand": 1.3, "expansion": 1.4, "breakthrough": 2.2,
	"award": 1.9, "awarded": 1.9, "milestone": 1.5, "robust": 1.8,
	"healthy": 1.9, "positive": 2.0, "momentum": 1.2, "outperform": 1.8,
	"best": 3.2, "top": 1.5, "efficient": 1.6, "sustainable": 1.3,
	// negative
	"bad": -2.5, "poor": -2.1, "weak": -1.9, "loss": -1.8, "losses": -1.8,
	"decline": -1.6, "declined": -1.6, "declining": -1.6, "drop": -1.4,
	"dropped": -1.4, "fall": -1.4, "fell": -1.4, "plunge": -2.0, "plunged": -2.0,
	"crash": -2.7, "slump": -1.9, "downturn": -1.8, "recession": -2.2,
	"fail": -2.4, "failed": -2.4, "failure": -2.5, "fraud": -3.0,
	"lawsuit": -1.7, "fine": -1.2, "fined": -1.5, "penalty": -1.6,
	"layoff": -2.0, "layoffs": -2.0, "cut": -1.1, "cuts": -1.1,
	"risk": -1.1, "risks": -1.1, "risky": -1.4, "concern": -1.3,
	"concerns": -1.3, "concerning": -1.5, "warning": -1.6, "warned": -1.6,
	"miss": -1.4, "missed": -1.4, "downgrade": -1.7, "downgraded": -1.7,
	"bearish": -2.0, "pessimistic": -1.9, "debt": -1.2, "default": -2.1,
	"bankruptcy": -2.9, "bankrupt": -2.9, "scandal": -2.5, "crisis": -2.3,
	"challenge": -0.8, "challenges": -0.8, "struggle": -1.7, "struggling": -1.8,
	"uncertainty": -1.3, "volatile": -1.2, "worst": -3.1, "negative": -2.0,
	"problem": -1.7, "problems": -1.7, "delay": -1.2, "delayed": -1.3,
}

// LexiconScorer is a dictionary-based implementation of Scorer. It is
// deterministic, needs no network access, and is the default scorer.
type LexiconScorer struct{}

// NewLexiconScorer returns the built-in lexicon scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score computes the polarity of text. Empty or whitespace-only input yields
// the neutral zero-vector result, never an error.
func (s *LexiconScorer) Score(text string) (Result, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Neutral(), nil
	}

	var sum, posSum, negSum float64
	var neuCount int
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			if !negations[tok] {
				neuCount++
			}
			continue
		}
		// flip valence when a negation appears within the three
		// preceding tokens
		for j := i - 1; j >= 0 && j >= i-3; j-- {
			if negations[tokens[j]] {
				valence *= -0.74
				break
			}
		}
		sum += valence
		if valence > 0 {
			posSum += valence
		} else {
			negSum += -valence
		}
	}

	compound := sum / math.Sqrt(sum*sum+alpha)
	if compound > 1 {
		compound = 1
	} else if compound < -1 {
		compound = -1
	}

	total := posSum + negSum + float64(neuCount)
	r := Result{Compound: round3(compound)}
	if total > 0 {
		r.Pos = round3(posSum / total)
		r.Neg = round3(negSum / total)
		r.Neu = round3(float64(neuCount) / total)
	} else {
		r.Neu = 1
	}
	r.Label = LabelFor(r.Compound)
	return r, nil
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, text)
	return strings.Fields(cleaned)
}
