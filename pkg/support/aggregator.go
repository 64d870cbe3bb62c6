package support

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// NewsDigest is a bundle of recent articles for one query.
type NewsDigest struct {
	Industry     string              `json:"industry,omitempty"`
	CompanyID    *uint               `json:"company_id,omitempty"`
	AggregatedAt time.Time           `json:"aggregated_at"`
	Articles     []store.NewsArticle `json:"articles"`
}

// NewsAggregator assembles news digests from stored articles.
type NewsAggregator struct {
	store *store.Store
	log   logger.Logger
}

// NewNewsAggregator creates a news aggregator.
func NewNewsAggregator(st *store.Store, log logger.Logger) *NewsAggregator {
	return &NewsAggregator{store: st, log: log}
}

// IndustryNews returns the latest articles tagged with an industry.
func (n *NewsAggregator) IndustryNews(ctx context.Context, industry string, limit int) (*NewsDigest, error) {
	articles, err := n.store.RecentNewsByIndustry(ctx, industry, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return &NewsDigest{Industry: industry, AggregatedAt: time.Now(), Articles: articles}, nil
}

// CompanyNews returns the latest articles linked to a company.
func (n *NewsAggregator) CompanyNews(ctx context.Context, companyID uint, limit int) (*NewsDigest, error) {
	articles, err := n.store.CompanyNews(ctx, companyID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return &NewsDigest{CompanyID: &companyID, AggregatedAt: time.Now(), Articles: articles}, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

// TopicSentimentAnalyzer scores stored news coverage of a topic.
type TopicSentimentAnalyzer struct {
	store  *store.Store
	scorer sentiment.Scorer
	log    logger.Logger
}

// NewTopicSentimentAnalyzer creates a topic sentiment analyzer.
func NewTopicSentimentAnalyzer(st *store.Store, scorer sentiment.Scorer, log logger.Logger) *TopicSentimentAnalyzer {
	return &TopicSentimentAnalyzer{store: st, scorer: scorer, log: log}
}

// AnalyzeTopic finds articles mentioning the topic and runs batch sentiment
// over their summaries. No matching articles is an error the caller can show
// directly.
func (t *TopicSentimentAnalyzer) AnalyzeTopic(ctx context.Context, topic string, limit int) (*sentiment.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	articles, err := t.store.SearchNewsByTopic(ctx, topic, limit)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("no news articles found for topic %q", topic)
	}
	t.log.Debug("analyzing topic coverage", "topic", topic, "articles", len(articles))

	docs := make([]sentiment.Document, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, sentiment.Document{Summary: a.Summary, Text: a.Title, Ref: a})
	}
	analysis := sentiment.AnalyzeAll(t.scorer, docs)
	return &analysis, nil
}
