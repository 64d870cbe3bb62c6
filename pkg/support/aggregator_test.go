package support

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
)

func TestIndustryNews(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	published := time.Now().AddDate(0, 0, -1)
	for i, title := range []string{"first", "second", "third"} {
		_, err := st.AddNewsArticle(ctx, &store.NewsArticle{
			Industry:      "Software",
			Title:         title,
			SourceURL:     "https://n.example.com/sw" + string(rune('a'+i)),
			PublishedDate: &published,
		})
		require.NoError(t, err)
	}

	agg := NewNewsAggregator(st, logger.Default())
	digest, err := agg.IndustryNews(ctx, "Software", 2)
	require.NoError(t, err)
	assert.Equal(t, "Software", digest.Industry)
	assert.Len(t, digest.Articles, 2)

	empty, err := agg.IndustryNews(ctx, "Mining", 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Articles)
}

func TestCompanyNews(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	companyID, err := st.UpsertCompany(ctx, &store.Company{Name: "Acme Corp"})
	require.NoError(t, err)
	published := time.Now().AddDate(0, 0, -1)
	_, err = st.AddNewsArticle(ctx, &store.NewsArticle{
		CompanyID:     &companyID,
		Title:         "Acme ships",
		SourceURL:     "https://n.example.com/acme",
		PublishedDate: &published,
	})
	require.NoError(t, err)

	agg := NewNewsAggregator(st, logger.Default())
	digest, err := agg.CompanyNews(ctx, companyID, 0)
	require.NoError(t, err)
	require.NotNil(t, digest.CompanyID)
	assert.Equal(t, companyID, *digest.CompanyID)
	assert.Len(t, digest.Articles, 1)
}

func TestAnalyzeTopic(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	published := time.Now().AddDate(0, 0, -1)
	articles := []store.NewsArticle{
		{Title: "Fusion energy breakthrough announced", Summary: "Excellent progress and strong growth in fusion research.", SourceURL: "https://n.example.com/f1", PublishedDate: &published},
		{Title: "Fusion startup reports losses", Summary: "Heavy losses and a failed milestone for the fusion startup.", SourceURL: "https://n.example.com/f2", PublishedDate: &published},
	}
	for i := range articles {
		_, err := st.AddNewsArticle(ctx, &articles[i])
		require.NoError(t, err)
	}

	analyzer := NewTopicSentimentAnalyzer(st, sentiment.NewLexiconScorer(), logger.Default())
	analysis, err := analyzer.AnalyzeTopic(ctx, "fusion", 0)
	require.NoError(t, err)

	require.Len(t, analysis.Results, 2)
	assert.Equal(t, 2, analysis.Aggregate.TotalAnalyzed)
	assert.Equal(t, 1, analysis.Aggregate.PositiveCount)
	assert.Equal(t, 1, analysis.Aggregate.NegativeCount)
}

func TestAnalyzeTopic_NoArticles(t *testing.T) {
	st := newTestStore(t)
	analyzer := NewTopicSentimentAnalyzer(st, sentiment.NewLexiconScorer(), logger.Default())

	_, err := analyzer.AnalyzeTopic(context.Background(), "nonexistent topic", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no news articles found for topic "nonexistent topic"`)
}

func TestAgent_ResolveCompanyID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	ticker := "ACME"
	companyID, err := st.UpsertCompany(ctx, &store.Company{Name: "Acme Corp", TickerSymbol: &ticker})
	require.NoError(t, err)

	agent := NewAgent(st, sentiment.NewLexiconScorer(), t.TempDir()+"/reminders.log", logger.Default())

	digest, err := agent.GetCompanyNews(ctx, 0, "ACME", 5)
	require.NoError(t, err)
	assert.Equal(t, companyID, *digest.CompanyID)

	_, err = agent.GetCompanyNews(ctx, 0, "", 5)
	require.Error(t, err)

	_, err = agent.GetCompanyNews(ctx, 0, "NOPE", 5)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
