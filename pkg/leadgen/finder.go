package leadgen

import (
	"context"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// Finder searches the company table for prospects matching coarse ICP
// filters.
type Finder struct {
	store *store.Store
	log   logger.Logger
}

// NewFinder creates a prospect finder.
func NewFinder(st *store.Store, log logger.Logger) *Finder {
	return &Finder{store: st, log: log}
}

// FindProspects returns up to max companies satisfying every criterion the
// ICP declares: industry in the preferred industries, region in the
// preferred regions, and employee count inside the collapsed range of the
// preferred size buckets. An absent criterion imposes no filter. No matches
// is an empty slice.
func (f *Finder) FindProspects(ctx context.Context, criteria Criteria, max int) ([]store.Company, error) {
	filter := store.ProspectFilter{Limit: max}
	if len(criteria.PreferredIndustries) > 0 {
		filter.Industries = criteria.PreferredIndustries
	}
	if len(criteria.PreferredRegions) > 0 {
		filter.Regions = criteria.PreferredRegions
	}
	filter.MinEmployees, filter.MaxEmployees = employeeRange(criteria.PreferredCompanySizes)

	prospects, err := f.store.FindCompanies(ctx, filter)
	if err != nil {
		return nil, err
	}
	f.log.Debug("prospect search complete", "found", len(prospects), "max", max)
	return prospects, nil
}
