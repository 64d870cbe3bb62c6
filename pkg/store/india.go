package store

import (
	"context"
	"fmt"
	"time"
)

// AddRealEstateProject inserts a project unless one already exists with the
// same RERA registration id, or failing that the same project name and
// developer name. Duplicates return the existing project id.
func (s *Store) AddRealEstateProject(ctx context.Context, p *RealEstateProject) (uint, error) {
	if p == nil || p.ProjectName == "" {
		return 0, fmt.Errorf("real estate project requires a name")
	}

	if p.RERARegistrationID != nil && *p.RERARegistrationID != "" {
		var existing RealEstateProject
		err := s.db.WithContext(ctx).Select("id").
			Where("rera_registration_id = ?", *p.RERARegistrationID).
			First(&existing).Error
		if err == nil {
			s.log.Debug("real estate project already exists", "rera_id", *p.RERARegistrationID, "project_id", existing.ID)
			return existing.ID, nil
		}
		if !notFound(err) {
			return 0, fmt.Errorf("failed checking project by RERA id: %w", err)
		}
	}

	if p.DeveloperName != "" {
		var existing RealEstateProject
		err := s.db.WithContext(ctx).Select("id").
			Where("project_name = ? AND developer_name = ?", p.ProjectName, p.DeveloperName).
			First(&existing).Error
		if err == nil {
			s.log.Debug("real estate project already exists", "project_name", p.ProjectName, "project_id", existing.ID)
			return existing.ID, nil
		}
		if !notFound(err) {
			return 0, fmt.Errorf("failed checking project by name: %w", err)
		}
	}

	if p.CollectedDate.IsZero() {
		p.CollectedDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, fmt.Errorf("failed inserting real estate project %q: %w", p.ProjectName, err)
	}
	s.log.Debug("inserted real estate project", "project_name", p.ProjectName, "project_id", p.ID)
	return p.ID, nil
}

// AddArchitecturalFirm inserts a firm unless one already exists with the same
// COA registration id or the same firm name. Duplicates return the existing
// firm id.
func (s *Store) AddArchitecturalFirm(ctx context.Context, f *ArchitecturalFirm) (uint, error) {
	if f == nil || f.FirmName == "" {
		return 0, fmt.Errorf("architectural firm requires a name")
	}

	if f.COARegistrationID != nil && *f.COARegistrationID != "" {
		var existing ArchitecturalFirm
		err := s.db.WithContext(ctx).Select("id").
			Where("coa_registration_id = ?", *f.COARegistrationID).
			First(&existing).Error
		if err == nil {
			s.log.Debug("architectural firm already exists", "coa_id", *f.COARegistrationID, "firm_id", existing.ID)
			return existing.ID, nil
		}
		if !notFound(err) {
			return 0, fmt.Errorf("failed checking firm by COA id: %w", err)
		}
	}

	var existing ArchitecturalFirm
	err := s.db.WithContext(ctx).Select("id").Where("firm_name = ?", f.FirmName).First(&existing).Error
	if err == nil {
		s.log.Debug("architectural firm already exists", "firm_name", f.FirmName, "firm_id", existing.ID)
		return existing.ID, nil
	}
	if !notFound(err) {
		return 0, fmt.Errorf("failed checking firm by name: %w", err)
	}

	if f.CollectedDate.IsZero() {
		f.CollectedDate = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return 0, fmt.Errorf("failed inserting architectural firm %q: %w", f.FirmName, err)
	}
	s.log.Debug("inserted architectural firm", "firm_name", f.FirmName, "firm_id", f.ID)
	return f.ID, nil
}

// RecentProjectsByRegion returns the latest-launched projects in a region.
func (s *Store) RecentProjectsByRegion(ctx context.Context, region string, limit int) ([]RealEstateProject, error) {
	var projects []RealEstateProject
	err := s.db.WithContext(ctx).
		Where("region = ?", region).
		Order("launch_date DESC").
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing real estate projects: %w", err)
	}
	return projects, nil
}

// RecentFirmsByRegion returns the most recently added firms in a region.
func (s *Store) RecentFirmsByRegion(ctx context.Context, region string, limit int) ([]ArchitecturalFirm, error) {
	var firms []ArchitecturalFirm
	err := s.db.WithContext(ctx).
		Where("region = ?", region).
		Order("id DESC").
		Limit(limit).
		Find(&firms).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing architectural firms: %w", err)
	}
	return firms, nil
}
