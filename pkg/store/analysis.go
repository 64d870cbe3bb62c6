package store

import (
	"context"
	"fmt"
	"time"
)

// SaveAnalysisResult persists a generated analysis snapshot.
func (s *Store) SaveAnalysisResult(ctx context.Context, r *AnalysisResult) (uint, error) {
	if r == nil || r.AnalysisType == "" || r.ResultJSON == "" {
		return 0, fmt.Errorf("analysis result requires a type and payload")
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return 0, fmt.Errorf("failed saving analysis result: %w", err)
	}
	return r.ID, nil
}
