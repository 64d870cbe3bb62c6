package store

import (
	"context"
	"fmt"
	"time"
)

// UpsertICP creates or replaces an ICP profile keyed by its unique name.
// Updating refreshes both the criteria and the last-used timestamp.
func (s *Store) UpsertICP(ctx context.Context, profileName, criteriaJSON string) (uint, error) {
	if profileName == "" || criteriaJSON == "" {
		return 0, fmt.Errorf("icp requires a profile name and criteria")
	}

	now := time.Now()
	var existing ICP
	err := s.db.WithContext(ctx).Where("profile_name = ?", profileName).First(&existing).Error
	if err == nil {
		updates := map[string]any{"criteria_json": criteriaJSON, "last_used": now}
		if err := s.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return 0, fmt.Errorf("failed updating icp %q: %w", profileName, err)
		}
		s.log.Debug("updated icp profile", "profile_name", profileName, "icp_id", existing.ID)
		return existing.ID, nil
	}
	if !notFound(err) {
		return 0, fmt.Errorf("failed looking up icp %q: %w", profileName, err)
	}

	icp := ICP{
		ProfileName:  profileName,
		CriteriaJSON: criteriaJSON,
		CreatedAt:    now,
		LastUsed:     &now,
	}
	if err := s.db.WithContext(ctx).Create(&icp).Error; err != nil {
		return 0, fmt.Errorf("failed inserting icp %q: %w", profileName, err)
	}
	s.log.Debug("created icp profile", "profile_name", profileName, "icp_id", icp.ID)
	return icp.ID, nil
}

// GetICPByName retrieves an ICP by name and touches its last-used timestamp.
func (s *Store) GetICPByName(ctx context.Context, profileName string) (*ICP, error) {
	if profileName == "" {
		return nil, ErrNotFound
	}
	var icp ICP
	if err := s.db.WithContext(ctx).Where("profile_name = ?", profileName).First(&icp).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed getting icp %q: %w", profileName, err)
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&icp).Update("last_used", now).Error; err != nil {
		return nil, fmt.Errorf("failed touching icp %q: %w", profileName, err)
	}
	icp.LastUsed = &now
	return &icp, nil
}
