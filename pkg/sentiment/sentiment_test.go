package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	assert.Equal(t, LabelPositive, LabelFor(0.05))
	assert.Equal(t, LabelPositive, LabelFor(0.9))
	assert.Equal(t, LabelNegative, LabelFor(-0.05))
	assert.Equal(t, LabelNegative, LabelFor(-0.7))
	assert.Equal(t, LabelNeutral, LabelFor(0.049))
	assert.Equal(t, LabelNeutral, LabelFor(-0.049))
	assert.Equal(t, LabelNeutral, LabelFor(0))
}

func TestLexiconScorer(t *testing.T) {
	s := NewLexiconScorer()

	pos, err := s.Score("Record profit and strong growth this quarter")
	require.NoError(t, err)
	assert.Equal(t, LabelPositive, pos.Label)
	assert.Greater(t, pos.Compound, 0.05)

	neg, err := s.Score("Heavy losses, layoffs and a bankruptcy warning")
	require.NoError(t, err)
	assert.Equal(t, LabelNegative, neg.Label)
	assert.Less(t, neg.Compound, -0.05)

	neu, err := s.Score("The meeting is scheduled for Thursday")
	require.NoError(t, err)
	assert.Equal(t, LabelNeutral, neu.Label)
}

func TestLexiconScorer_EmptyText(t *testing.T) {
	s := NewLexiconScorer()

	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := s.Score(text)
		require.NoError(t, err)
		assert.Equal(t, Neutral(), got)
	}
}

func TestLexiconScorer_Negation(t *testing.T) {
	s := NewLexiconScorer()

	plain, err := s.Score("the results were good")
	require.NoError(t, err)
	negated, err := s.Score("the results were not good")
	require.NoError(t, err)
	assert.Greater(t, plain.Compound, negated.Compound)
	assert.Equal(t, LabelNegative, negated.Label)
}

// stubScorer returns canned results keyed by input text.
type stubScorer struct {
	results map[string]Result
	failOn  string
}

func (s *stubScorer) Score(text string) (Result, error) {
	if s.failOn != "" && text == s.failOn {
		return Result{}, errors.New("scorer unavailable")
	}
	if r, ok := s.results[text]; ok {
		return r, nil
	}
	return Neutral(), nil
}

func TestAnalyzeAll(t *testing.T) {
	scorer := &stubScorer{results: map[string]Result{
		"great news":  {Compound: 0.8, Label: LabelPositive},
		"bad outcome": {Compound: -0.5, Label: LabelNegative},
	}}

	docs := []Document{
		{Text: "great news"},
		{Text: ""},
		{Text: "bad outcome"},
	}
	analysis := AnalyzeAll(scorer, docs)

	require.Len(t, analysis.Results, 3)
	agg := analysis.Aggregate
	assert.Equal(t, 3, agg.TotalAnalyzed)
	assert.Equal(t, 1, agg.PositiveCount)
	assert.Equal(t, 1, agg.NegativeCount)
	// Empty text scores neutral and still counts as analyzed.
	assert.Equal(t, 1, agg.NeutralCount)
	assert.InDelta(t, 0.1, agg.AverageCompoundScore, 1e-9)
}

func TestAnalyzeAll_ScorerFailure(t *testing.T) {
	scorer := &stubScorer{
		results: map[string]Result{"fine": {Compound: 0.6, Label: LabelPositive}},
		failOn:  "broken",
	}

	analysis := AnalyzeAll(scorer, []Document{{Text: "fine"}, {Text: "broken"}})

	require.Len(t, analysis.Results, 2)
	assert.True(t, analysis.Results[0].Analyzed)
	assert.False(t, analysis.Results[1].Analyzed)
	assert.Equal(t, "scorer unavailable", analysis.Results[1].Err)

	// The failed item is excluded from the aggregate average.
	agg := analysis.Aggregate
	assert.Equal(t, 1, agg.PositiveCount)
	assert.InDelta(t, 0.6, agg.AverageCompoundScore, 1e-9)
}

func TestAnalyzeAll_Empty(t *testing.T) {
	analysis := AnalyzeAll(NewLexiconScorer(), nil)
	assert.Empty(t, analysis.Results)
	assert.Zero(t, analysis.Aggregate.AverageCompoundScore)
}

func TestDocumentContent_PrefersSummary(t *testing.T) {
	d := Document{Summary: "summary text", Text: "title text"}
	assert.Equal(t, "summary text", d.content())
	assert.Equal(t, "title text", Document{Text: "title text"}.content())
}
