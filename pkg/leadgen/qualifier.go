package leadgen

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// Disqualification reasons.
const (
	ReasonIndustryMismatch = "Industry mismatch"
	ReasonRegionMismatch   = "Region mismatch"
	ReasonScoreTooLow      = "Score too low"
)

const leadSource = "Database Prospecting"

// Qualifier scores prospects against an ICP and persists the outcome as lead
// rows.
type Qualifier struct {
	store *store.Store
	log   logger.Logger
}

// NewQualifier creates a lead qualifier.
func NewQualifier(st *store.Store, log logger.Logger) *Qualifier {
	return &Qualifier{store: st, log: log}
}

// QualifyAndScore evaluates every prospect against the ICP, upserting one
// lead row per (company, ICP) pair, and returns the ids of the leads
// qualified in this pass. A failure on one prospect is logged and the batch
// continues.
func (q *Qualifier) QualifyAndScore(ctx context.Context, prospects []store.Company, icpID uint, criteria Criteria) []uint {
	var qualifiedIDs []uint

	for _, prospect := range prospects {
		leadID, status, err := q.qualifyOne(ctx, prospect, icpID, criteria)
		if err != nil {
			q.log.Error("failed qualifying prospect", "company", prospect.Name, "error", err)
			continue
		}
		if status == store.StatusQualified {
			qualifiedIDs = append(qualifiedIDs, leadID)
		}
	}

	q.log.Info("qualification pass complete",
		"icp_id", icpID, "prospects", len(prospects), "qualified", len(qualifiedIDs))
	return qualifiedIDs
}

func (q *Qualifier) qualifyOne(ctx context.Context, prospect store.Company, icpID uint, criteria Criteria) (uint, string, error) {
	existing, err := q.store.FindLeadByCompanyICP(ctx, prospect.Name, icpID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return 0, "", err
	}

	score := Score(prospect, criteria)
	status, reason := Classify(prospect, criteria, score)

	icp := icpID
	lead := store.Lead{
		ICPID:               &icp,
		CompanyName:         prospect.Name,
		Industry:            prospect.Industry,
		Region:              prospect.Region,
		Website:             prospect.Website,
		Source:              leadSource,
		QualificationStatus: status,
		QualificationReason: reason,
		Score:               score,
		CollectedDate:       time.Now(),
	}

	if existing != nil {
		// workflow status is intentionally not rewritten on update
		if err := q.store.UpdateLeadQualification(ctx, existing.ID, &lead); err != nil {
			return 0, "", err
		}
		return existing.ID, status, nil
	}

	if status == store.StatusQualified {
		lead.Status = store.WorkflowNew
	} else {
		lead.Status = store.WorkflowArchived
	}
	id, err := q.store.AddLead(ctx, &lead)
	if err != nil {
		return 0, "", err
	}
	return id, status, nil
}

// Score computes the prospect's match ratio against the ICP: each of the
// industry, region and company-size criteria the ICP declares contributes to
// the denominator, and to the numerator only when the prospect matches it.
// The result is rounded to two decimals; an ICP declaring none of the three
// scores 0.
func Score(prospect store.Company, criteria Criteria) float64 {
	var matched, scored float64

	if criteria.PreferredIndustries != nil {
		scored++
		if contains(criteria.PreferredIndustries, prospect.Industry) {
			matched++
		}
	}
	if criteria.PreferredRegions != nil {
		scored++
		if contains(criteria.PreferredRegions, prospect.Region) {
			matched++
		}
	}
	if criteria.PreferredCompanySizes != nil {
		scored++
		if matchesSizeBuckets(prospect.EmployeeCount, criteria.PreferredCompanySizes) {
			matched++
		}
	}

	if scored == 0 {
		return 0
	}
	return math.Round(matched/scored*100) / 100
}

// Classify applies the ICP's hard filters and threshold to a computed score.
// Hard filters short-circuit: a required-industry or required-region
// violation disqualifies regardless of score.
func Classify(prospect store.Company, criteria Criteria, score float64) (status, reason string) {
	if criteria.RequiredIndustry != nil && !contains(criteria.RequiredIndustry, prospect.Industry) {
		return store.StatusDisqualified, ReasonIndustryMismatch
	}
	if criteria.RequiredRegion != nil && !contains(criteria.RequiredRegion, prospect.Region) {
		return store.StatusDisqualified, ReasonRegionMismatch
	}
	if score >= criteria.Threshold() {
		return store.StatusQualified, ""
	}
	return store.StatusDisqualified, ReasonScoreTooLow
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
