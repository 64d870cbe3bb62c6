package sentiment

// Document is one text item submitted for batch analysis. Summary is
// preferred over Text when both are set, mirroring how news rows carry their
// content. Ref carries the originating record through to the result.
type Document struct {
	Summary string `json:"summary,omitempty"`
	Text    string `json:"text,omitempty"`
	Ref     any    `json:"data,omitempty"`
}

func (d Document) content() string {
	if d.Summary != "" {
		return d.Summary
	}
	return d.Text
}

// ItemResult pairs one document with its polarity measurement. Analyzed is
// false only when the scorer itself failed; empty text scores neutral and
// counts as analyzed.
type ItemResult struct {
	Doc       Document `json:"data"`
	Sentiment Result   `json:"sentiment"`
	Analyzed  bool     `json:"-"`
	Err       string   `json:"error,omitempty"`
}

// Summary aggregates a batch of polarity measurements.
type Summary struct {
	TotalAnalyzed        int     `json:"total_analyzed"`
	PositiveCount        int     `json:"positive_count"`
	NegativeCount        int     `json:"negative_count"`
	NeutralCount         int     `json:"neutral_count"`
	AverageCompoundScore float64 `json:"average_compound_score"`
}

// Analysis is the full outcome of analyzing a batch.
type Analysis struct {
	Results   []ItemResult `json:"individual_results"`
	Aggregate Summary      `json:"aggregate_summary"`
}

// AnalyzeAll scores every document and aggregates the outcomes. A scorer
// failure on one document is recorded on that item and excluded from the
// aggregate; it never aborts the batch. The average compound score is taken
// over successfully analyzed items only, and is 0 when none analyzed.
func AnalyzeAll(scorer Scorer, docs []Document) Analysis {
	results := make([]ItemResult, 0, len(docs))
	var compoundSum float64
	var valid int
	agg := Summary{TotalAnalyzed: len(docs)}

	for _, doc := range docs {
		r, err := scorer.Score(doc.content())
		item := ItemResult{Doc: doc, Sentiment: r, Analyzed: err == nil}
		if err != nil {
			item.Err = err.Error()
			results = append(results, item)
			continue
		}

		switch r.Label {
		case LabelPositive:
			agg.PositiveCount++
		case LabelNegative:
			agg.NegativeCount++
		default:
			agg.NeutralCount++
		}
		compoundSum += r.Compound
		valid++
		results = append(results, item)
	}

	if valid > 0 {
		agg.AverageCompoundScore = round3(compoundSum / float64(valid))
	}
	return Analysis{Results: results, Aggregate: agg}
}
