package leadgen

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// ICPProfile is a stored ideal-customer profile with its parsed criteria.
type ICPProfile struct {
	ID          uint      `json:"icp_id"`
	ProfileName string    `json:"profile_name"`
	Criteria    Criteria  `json:"criteria"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeadSummary aggregates the qualified leads of one generation run.
type LeadSummary struct {
	TotalQualifiedLeads int     `json:"total_qualified_leads"`
	AverageScore        float64 `json:"average_score"`
}

// LeadReport is the outcome of a full prospect-find-and-qualify run.
type LeadReport struct {
	Title       string       `json:"title"`
	GeneratedAt time.Time    `json:"generated_at"`
	ProfileName string       `json:"profile_name"`
	Criteria    Criteria     `json:"criteria"`
	Summary     LeadSummary  `json:"summary"`
	Leads       []store.Lead `json:"leads"`
}

// Agent orchestrates ICP management, prospect discovery and qualification.
type Agent struct {
	store     *store.Store
	finder    *Finder
	qualifier *Qualifier
	log       logger.Logger
}

// NewAgent creates a lead-generation agent backed by the store.
func NewAgent(st *store.Store, log logger.Logger) *Agent {
	return &Agent{
		store:     st,
		finder:    NewFinder(st, log),
		qualifier: NewQualifier(st, log),
		log:       log,
	}
}

// DefineICP stores (or replaces) an ICP profile and returns its id.
func (a *Agent) DefineICP(ctx context.Context, profileName string, criteria Criteria) (uint, error) {
	raw, err := criteria.Marshal()
	if err != nil {
		return 0, fmt.Errorf("failed encoding criteria for %q: %w", profileName, err)
	}
	id, err := a.store.UpsertICP(ctx, profileName, raw)
	if err != nil {
		return 0, err
	}
	a.log.Info("defined icp profile", "profile_name", profileName, "icp_id", id)
	return id, nil
}

// GetICP loads an ICP profile by name with its criteria decoded.
func (a *Agent) GetICP(ctx context.Context, profileName string) (*ICPProfile, error) {
	icp, err := a.store.GetICPByName(ctx, profileName)
	if err != nil {
		return nil, err
	}
	criteria, err := ParseCriteria(icp.CriteriaJSON)
	if err != nil {
		return nil, fmt.Errorf("icp %q holds invalid criteria: %w", profileName, err)
	}
	return &ICPProfile{
		ID:          icp.ID,
		ProfileName: icp.ProfileName,
		Criteria:    criteria,
		CreatedAt:   icp.CreatedAt,
	}, nil
}

// GenerateLeads runs one end-to-end pass for a stored ICP: find prospects,
// qualify them, and report the best numLeads qualified leads.
func (a *Agent) GenerateLeads(ctx context.Context, profileName string, numLeads int) (*LeadReport, error) {
	if numLeads <= 0 {
		numLeads = 10
	}

	profile, err := a.GetICP(ctx, profileName)
	if err != nil {
		return nil, err
	}

	// overfetch so enough prospects survive qualification
	prospects, err := a.finder.FindProspects(ctx, profile.Criteria, numLeads*3)
	if err != nil {
		return nil, err
	}

	qualifiedIDs := a.qualifier.QualifyAndScore(ctx, prospects, profile.ID, profile.Criteria)

	leads, err := a.store.LeadsByIDs(ctx, qualifiedIDs)
	if err != nil {
		return nil, err
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].Score > leads[j].Score })
	if len(leads) > numLeads {
		leads = leads[:numLeads]
	}

	report := &LeadReport{
		Title:       fmt.Sprintf("Lead Generation Report: %s", profileName),
		GeneratedAt: time.Now(),
		ProfileName: profileName,
		Criteria:    profile.Criteria,
		Summary:     summarizeLeads(leads),
		Leads:       leads,
	}
	a.log.Info("generated lead report",
		"profile_name", profileName, "requested", numLeads, "qualified", len(leads))
	return report, nil
}

func summarizeLeads(leads []store.Lead) LeadSummary {
	s := LeadSummary{TotalQualifiedLeads: len(leads)}
	if len(leads) == 0 {
		return s
	}
	var total float64
	for _, l := range leads {
		total += l.Score
	}
	s.AverageScore = math.Round(total/float64(len(leads))*100) / 100
	return s
}
