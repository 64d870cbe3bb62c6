package store

import (
	"context"
	"fmt"
	"time"
)

// AddLead inserts a new lead row and returns its id.
func (s *Store) AddLead(ctx context.Context, l *Lead) (uint, error) {
	if l == nil {
		return 0, fmt.Errorf("lead required")
	}
	if l.CollectedDate.IsZero() {
		l.CollectedDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return 0, fmt.Errorf("failed inserting lead for %q: %w", l.CompanyName, err)
	}
	s.log.Debug("added lead", "company_name", l.CompanyName, "lead_id", l.ID)
	return l.ID, nil
}

// UpdateLeadQualification rewrites the qualification outcome of an existing
// lead in place. The workflow status column is deliberately left untouched:
// re-qualifying an archived lead does not reactivate it.
func (s *Store) UpdateLeadQualification(ctx context.Context, leadID uint, l *Lead) error {
	if leadID == 0 {
		return fmt.Errorf("lead id required")
	}
	updates := map[string]any{
		"icp_id":               l.ICPID,
		"company_name":         l.CompanyName,
		"industry":             l.Industry,
		"region":               l.Region,
		"website":              l.Website,
		"source":               l.Source,
		"qualification_status": l.QualificationStatus,
		"qualification_reason": l.QualificationReason,
		"score":                l.Score,
		"collected_date":       l.CollectedDate,
	}
	res := s.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", leadID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed updating lead %d: %w", leadID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.Debug("updated lead qualification", "lead_id", leadID, "status", l.QualificationStatus)
	return nil
}

// FindLeadByCompanyICP returns the lead for a (company name, ICP) pair,
// highest score first when historical duplicates exist, or ErrNotFound.
func (s *Store) FindLeadByCompanyICP(ctx context.Context, companyName string, icpID uint) (*Lead, error) {
	var l Lead
	err := s.db.WithContext(ctx).
		Where("company_name = ? AND icp_id = ?", companyName, icpID).
		Order("score DESC, collected_date DESC").
		First(&l).Error
	if err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed looking up lead for %q: %w", companyName, err)
	}
	return &l, nil
}

// LeadsByIDs retrieves leads by primary key. Missing ids are skipped.
func (s *Store) LeadsByIDs(ctx context.Context, ids []uint) ([]Lead, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var leads []Lead
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed retrieving leads: %w", err)
	}
	return leads, nil
}

// LeadsByICP returns all leads linked to an ICP, best scores first.
func (s *Store) LeadsByICP(ctx context.Context, icpID uint) ([]Lead, error) {
	var leads []Lead
	err := s.db.WithContext(ctx).
		Where("icp_id = ?", icpID).
		Order("score DESC, collected_date DESC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing leads for icp %d: %w", icpID, err)
	}
	return leads, nil
}

// QualifiedLeadStats summarizes recently qualified leads.
type QualifiedLeadStats struct {
	Count        int64
	AverageScore float64
	TopSource    string
}

// RecentQualifiedLeadStats aggregates leads qualified on or after since:
// total count, mean score, and the most frequent lead source.
func (s *Store) RecentQualifiedLeadStats(ctx context.Context, since time.Time) (QualifiedLeadStats, error) {
	var stats QualifiedLeadStats

	var row struct {
		Count int64
		Avg   *float64
	}
	err := s.db.WithContext(ctx).Model(&Lead{}).
		Select("COUNT(*) AS count, AVG(score) AS avg").
		Where("qualification_status = ? AND collected_date >= ?", StatusQualified, since).
		Scan(&row).Error
	if err != nil {
		return stats, fmt.Errorf("failed aggregating qualified leads: %w", err)
	}
	stats.Count = row.Count
	if row.Avg != nil {
		stats.AverageScore = *row.Avg
	}

	var top struct{ Source string }
	err = s.db.WithContext(ctx).Model(&Lead{}).
		Select("source").
		Where("qualification_status = ? AND collected_date >= ?", StatusQualified, since).
		Group("source").
		Order("COUNT(*) DESC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return stats, fmt.Errorf("failed finding top lead source: %w", err)
	}
	stats.TopSource = top.Source
	return stats, nil
}
