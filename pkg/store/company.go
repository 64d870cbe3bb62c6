package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UpsertCompany inserts a company or updates the existing row matched by
// ticker symbol first, then by name. The full record is written in place;
// companies are never deleted here. Returns the company id.
func (s *Store) UpsertCompany(ctx context.Context, c *Company) (uint, error) {
	if c == nil || (c.Name == "" && c.TickerSymbol == nil) {
		return 0, fmt.Errorf("company requires a name or ticker symbol")
	}

	var existing Company
	found := false
	if c.TickerSymbol != nil && *c.TickerSymbol != "" {
		err := s.db.WithContext(ctx).Where("ticker_symbol = ?", *c.TickerSymbol).First(&existing).Error
		if err == nil {
			found = true
		} else if !notFound(err) {
			return 0, fmt.Errorf("failed looking up company by ticker: %w", err)
		}
	}
	if !found && c.Name != "" {
		err := s.db.WithContext(ctx).Where("name = ?", c.Name).First(&existing).Error
		if err == nil {
			found = true
		} else if !notFound(err) {
			return 0, fmt.Errorf("failed looking up company by name: %w", err)
		}
	}

	c.LastUpdated = time.Now()
	if found {
		c.ID = existing.ID
		if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
			return 0, fmt.Errorf("failed updating company %q: %w", c.Name, err)
		}
		s.log.Debug("updated company", "name", c.Name, "company_id", c.ID)
		return c.ID, nil
	}

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, fmt.Errorf("failed inserting company %q: %w", c.Name, err)
	}
	s.log.Debug("inserted company", "name", c.Name, "company_id", c.ID)
	return c.ID, nil
}

// GetCompanyByTicker retrieves a company by its ticker symbol.
func (s *Store) GetCompanyByTicker(ctx context.Context, ticker string) (*Company, error) {
	if ticker == "" {
		return nil, ErrNotFound
	}
	var c Company
	if err := s.db.WithContext(ctx).Where("ticker_symbol = ?", ticker).First(&c).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed getting company by ticker %s: %w", ticker, err)
	}
	return &c, nil
}

// GetCompanyByName retrieves a company by its exact name.
func (s *Store) GetCompanyByName(ctx context.Context, name string) (*Company, error) {
	if name == "" {
		return nil, ErrNotFound
	}
	var c Company
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed getting company by name %s: %w", name, err)
	}
	return &c, nil
}

// GetCompanyByID retrieves a company by primary key.
func (s *Store) GetCompanyByID(ctx context.Context, id uint) (*Company, error) {
	var c Company
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if notFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed getting company %d: %w", id, err)
	}
	return &c, nil
}

// ReplaceOfficers clears the existing officer rows for a company and inserts
// the given set in one transaction.
func (s *Store) ReplaceOfficers(ctx context.Context, companyID uint, officers []CompanyOfficer) error {
	if companyID == 0 {
		return fmt.Errorf("company id required")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&CompanyOfficer{}).Error; err != nil {
			return fmt.Errorf("failed clearing officers for company %d: %w", companyID, err)
		}
		now := time.Now()
		for i := range officers {
			officers[i].ID = 0
			officers[i].CompanyID = companyID
			officers[i].LastUpdated = now
		}
		if len(officers) == 0 {
			return nil
		}
		if err := tx.Create(&officers).Error; err != nil {
			return fmt.Errorf("failed inserting officers for company %d: %w", companyID, err)
		}
		return nil
	})
}

// ProspectFilter narrows the company search used for prospecting. Zero-value
// fields impose no filter.
type ProspectFilter struct {
	Industries   []string
	Regions      []string
	MinEmployees *int
	MaxEmployees *int
	Limit        int
}

// FindCompanies returns companies matching every non-empty filter, bounded by
// Limit. No matches is an empty slice, not an error.
func (s *Store) FindCompanies(ctx context.Context, f ProspectFilter) ([]Company, error) {
	q := s.db.WithContext(ctx).Model(&Company{})
	if len(f.Industries) > 0 {
		q = q.Where("industry IN ?", f.Industries)
	}
	if len(f.Regions) > 0 {
		q = q.Where("region IN ?", f.Regions)
	}
	if f.MinEmployees != nil {
		q = q.Where("employee_count >= ?", *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		q = q.Where("employee_count <= ?", *f.MaxEmployees)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var companies []Company
	if err := q.Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed searching companies: %w", err)
	}
	return companies, nil
}

// TopCompaniesByMarketCap returns companies in an industry/region ordered by
// market cap descending, nulls last.
func (s *Store) TopCompaniesByMarketCap(ctx context.Context, industry, region string, limit int) ([]Company, error) {
	var companies []Company
	err := s.db.WithContext(ctx).
		Where("industry = ? AND region = ?", industry, region).
		Order("market_cap IS NULL, market_cap DESC").
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing companies by market cap: %w", err)
	}
	return companies, nil
}

// StrongerCompetitors returns competitors among ids whose market cap exceeds
// the given floor, largest first.
func (s *Store) StrongerCompetitors(ctx context.Context, ids []uint, marketCapFloor float64, limit int) ([]Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var companies []Company
	err := s.db.WithContext(ctx).
		Where("id IN ? AND market_cap > ?", ids, marketCapFloor).
		Order("market_cap DESC").
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed listing stronger competitors: %w", err)
	}
	return companies, nil
}
