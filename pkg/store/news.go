package store

import (
	"context"
	"fmt"
	"time"
)

// AddNewsArticle inserts an article unless one with the same source URL
// already exists, in which case the existing article id is returned and no
// row is created.
func (s *Store) AddNewsArticle(ctx context.Context, a *NewsArticle) (uint, error) {
	if a == nil || a.SourceURL == "" {
		return 0, fmt.Errorf("news article requires a source URL")
	}

	var existing NewsArticle
	err := s.db.WithContext(ctx).Select("id").Where("source_url = ?", a.SourceURL).First(&existing).Error
	if err == nil {
		s.log.Debug("news article already exists", "source_url", a.SourceURL, "article_id", existing.ID)
		return existing.ID, nil
	}
	if !notFound(err) {
		return 0, fmt.Errorf("failed checking for existing article: %w", err)
	}

	if a.CollectedDate.IsZero() {
		a.CollectedDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return 0, fmt.Errorf("failed inserting news article %q: %w", a.Title, err)
	}
	s.log.Debug("inserted news article", "title", a.Title, "article_id", a.ID)
	return a.ID, nil
}

// RecentNewsByCompany returns the newest articles for a company published on
// or after since.
func (s *Store) RecentNewsByCompany(ctx context.Context, companyID uint, since time.Time, limit int) ([]NewsArticle, error) {
	var articles []NewsArticle
	err := s.db.WithContext(ctx).
		Where("company_id = ? AND published_date >= ?", companyID, since).
		Order("published_date DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing company news: %w", err)
	}
	return articles, nil
}

// RecentNewsByIndustry returns the newest articles tagged with an industry.
func (s *Store) RecentNewsByIndustry(ctx context.Context, industry string, limit int) ([]NewsArticle, error) {
	var articles []NewsArticle
	err := s.db.WithContext(ctx).
		Where("industry = ?", industry).
		Order("published_date DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing industry news: %w", err)
	}
	return articles, nil
}

// CompanyNews returns the newest articles for a company without a recency
// window.
func (s *Store) CompanyNews(ctx context.Context, companyID uint, limit int) ([]NewsArticle, error) {
	var articles []NewsArticle
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("published_date DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing company news: %w", err)
	}
	return articles, nil
}

// SentimentSummary aggregates precomputed article sentiment.
type SentimentSummary struct {
	AverageScore *float64
	ArticleCount int64
}

// IndustrySentiment averages stored sentiment scores for an industry's
// articles published on or after since. AverageScore is nil when no article
// carries a score.
func (s *Store) IndustrySentiment(ctx context.Context, industry string, since time.Time) (SentimentSummary, error) {
	return s.newsSentiment(ctx, "industry = ?", industry, since)
}

// CompanySentiment averages stored sentiment scores for a company's articles
// published on or after since.
func (s *Store) CompanySentiment(ctx context.Context, companyID uint, since time.Time) (SentimentSummary, error) {
	return s.newsSentiment(ctx, "company_id = ?", companyID, since)
}

func (s *Store) newsSentiment(ctx context.Context, cond string, arg any, since time.Time) (SentimentSummary, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := s.db.WithContext(ctx).Model(&NewsArticle{}).
		Select("AVG(sentiment_score) AS avg, COUNT(*) AS count").
		Where(cond, arg).
		Where("published_date >= ?", since).
		Scan(&row).Error
	if err != nil {
		return SentimentSummary{}, fmt.Errorf("failed aggregating news sentiment: %w", err)
	}
	return SentimentSummary{AverageScore: row.Avg, ArticleCount: row.Count}, nil
}

// SearchNewsByTopic finds articles whose title, summary or topic mention the
// topic, or that belong to a company whose name or ticker matches it.
func (s *Store) SearchNewsByTopic(ctx context.Context, topic string, limit int) ([]NewsArticle, error) {
	like := "%" + topic + "%"
	var articles []NewsArticle
	err := s.db.WithContext(ctx).
		Where(`company_id IN (SELECT id FROM companies WHERE name LIKE ? OR ticker_symbol LIKE ?)
			OR title LIKE ? OR summary LIKE ? OR topic LIKE ?`, like, like, like, like, like).
		Order("published_date DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed searching news for topic %q: %w", topic, err)
	}
	return articles, nil
}

// CompetitorHeadline pairs a competitor name with one of its recent articles.
type CompetitorHeadline struct {
	CompanyName    string
	Title          string
	SentimentLabel string
}

// CompetitorHeadlines returns recent headlines for the given competitor ids,
// ordered by company name then recency.
func (s *Store) CompetitorHeadlines(ctx context.Context, competitorIDs []uint, since time.Time) ([]CompetitorHeadline, error) {
	if len(competitorIDs) == 0 {
		return nil, nil
	}
	var rows []CompetitorHeadline
	err := s.db.WithContext(ctx).Model(&NewsArticle{}).
		Select("companies.name AS company_name, news_articles.title AS title, news_articles.sentiment_label AS sentiment_label").
		Joins("JOIN companies ON companies.id = news_articles.company_id").
		Where("news_articles.company_id IN ? AND news_articles.published_date >= ?", competitorIDs, since).
		Order("companies.name, news_articles.published_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing competitor headlines: %w", err)
	}
	return rows, nil
}
