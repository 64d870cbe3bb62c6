package store

import (
	"context"
	"fmt"
	"time"
)

// AddMarketTrend inserts a trend observation.
func (s *Store) AddMarketTrend(ctx context.Context, t *MarketTrend) (uint, error) {
	if t == nil || t.TrendDescription == "" {
		return 0, fmt.Errorf("market trend requires a description")
	}
	if t.CollectedDate.IsZero() {
		t.CollectedDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return 0, fmt.Errorf("failed inserting market trend: %w", err)
	}
	return t.ID, nil
}

// RecentTrends returns trends for an industry/region collected on or after
// since, newest published first.
func (s *Store) RecentTrends(ctx context.Context, industry, region string, since time.Time, limit int) ([]MarketTrend, error) {
	var trends []MarketTrend
	err := s.db.WithContext(ctx).
		Where("industry = ? AND region = ? AND collected_date >= ?", industry, region, since).
		Order("published_date DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing recent trends: %w", err)
	}
	return trends, nil
}

// RecentPublishedTrends returns trends for an industry/region published on or
// after since, newest first.
func (s *Store) RecentPublishedTrends(ctx context.Context, industry, region string, since time.Time, limit int) ([]MarketTrend, error) {
	var trends []MarketTrend
	err := s.db.WithContext(ctx).
		Where("industry = ? AND region = ? AND published_date >= ?", industry, region, since).
		Order("published_date DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing published trends: %w", err)
	}
	return trends, nil
}

// PositiveTrends returns recent trends for an industry/region with sentiment
// above the threshold, newest published first.
func (s *Store) PositiveTrends(ctx context.Context, industry, region string, minSentiment float64, limit int) ([]MarketTrend, error) {
	var trends []MarketTrend
	err := s.db.WithContext(ctx).
		Where("industry = ? AND region = ? AND sentiment_score > ?", industry, region, minSentiment).
		Order("published_date DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing positive trends: %w", err)
	}
	return trends, nil
}

// NegativeTrends returns recent trends for an industry/region with sentiment
// below the threshold, newest published first.
func (s *Store) NegativeTrends(ctx context.Context, industry, region string, maxSentiment float64, limit int) ([]MarketTrend, error) {
	var trends []MarketTrend
	err := s.db.WithContext(ctx).
		Where("industry = ? AND region = ? AND sentiment_score < ?", industry, region, maxSentiment).
		Order("published_date DESC").
		Limit(limit).
		Find(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing negative trends: %w", err)
	}
	return trends, nil
}
