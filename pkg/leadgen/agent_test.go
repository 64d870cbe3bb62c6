package leadgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

func TestAgent_DefineAndGetICP(t *testing.T) {
	st := newTestStore(t)
	agent := NewAgent(st, logger.Default())
	ctx := context.Background()

	criteria := Criteria{
		PreferredIndustries: []string{"Software"},
		RequiredRegion:      []string{"US"},
		MinScoreThreshold:   f64Ptr(0.6),
	}
	id, err := agent.DefineICP(ctx, "tech_startups", criteria)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := agent.GetICP(ctx, "tech_startups")
	require.NoError(t, err)
	assert.Equal(t, "tech_startups", got.ProfileName)
	assert.Equal(t, criteria, got.Criteria)

	_, err = agent.GetICP(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAgent_GenerateLeads(t *testing.T) {
	st := newTestStore(t)
	agent := NewAgent(st, logger.Default())
	ctx := context.Background()

	companies := []store.Company{
		{Name: "Perfect Fit", Industry: "Software", Region: "US", EmployeeCount: intPtr(30)},
		{Name: "Wrong Region", Industry: "Software", Region: "EU", EmployeeCount: intPtr(30)},
		{Name: "Wrong Size", Industry: "Software", Region: "US", EmployeeCount: intPtr(9000)},
		{Name: "Other Industry", Industry: "Construction", Region: "US", EmployeeCount: intPtr(30)},
	}
	for i := range companies {
		_, err := st.UpsertCompany(ctx, &companies[i])
		require.NoError(t, err)
	}

	_, err := agent.DefineICP(ctx, "tech_startups", Criteria{
		PreferredIndustries:   []string{"Software"},
		PreferredRegions:      []string{"US"},
		PreferredCompanySizes: []string{"11-50"},
	})
	require.NoError(t, err)

	report, err := agent.GenerateLeads(ctx, "tech_startups", 5)
	require.NoError(t, err)

	assert.Equal(t, "Lead Generation Report: tech_startups", report.Title)
	assert.Equal(t, "tech_startups", report.ProfileName)
	// Only Perfect Fit survives the finder's hard prospect filters and the
	// threshold; Wrong Region and Wrong Size are filtered out before scoring.
	require.Len(t, report.Leads, 1)
	assert.Equal(t, "Perfect Fit", report.Leads[0].CompanyName)
	assert.Equal(t, 1, report.Summary.TotalQualifiedLeads)
	assert.InDelta(t, 1.0, report.Summary.AverageScore, 1e-9)
}

func TestAgent_GenerateLeads_TruncatesToRequested(t *testing.T) {
	st := newTestStore(t)
	agent := NewAgent(st, logger.Default())
	ctx := context.Background()

	companies := []store.Company{
		{Name: "Best", Industry: "Software", Region: "US"},
		{Name: "Good", Industry: "Software", Region: "EU"},
		{Name: "AlsoGood", Industry: "Fintech", Region: "US"},
	}
	for i := range companies {
		_, err := st.UpsertCompany(ctx, &companies[i])
		require.NoError(t, err)
	}

	_, err := agent.DefineICP(ctx, "p", Criteria{
		PreferredIndustries: []string{"Software", "Fintech"},
	})
	require.NoError(t, err)

	// Three companies qualify but only two were requested.
	report, err := agent.GenerateLeads(ctx, "p", 2)
	require.NoError(t, err)
	require.Len(t, report.Leads, 2)
	assert.Equal(t, 2, report.Summary.TotalQualifiedLeads)
	assert.GreaterOrEqual(t, report.Leads[0].Score, report.Leads[1].Score)
}

func TestAgent_GenerateLeads_UnknownProfile(t *testing.T) {
	st := newTestStore(t)
	agent := NewAgent(st, logger.Default())

	_, err := agent.GenerateLeads(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
