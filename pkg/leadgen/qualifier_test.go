package leadgen

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jordanlanch/bizradar/pkg/database"
	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return store.New(db, logger.Default())
}

func TestScore(t *testing.T) {
	prospect := store.Company{
		Industry:      "Software",
		Region:        "US",
		EmployeeCount: intPtr(30),
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     float64
	}{
		{
			"all three match",
			Criteria{
				PreferredIndustries:   []string{"Software"},
				PreferredRegions:      []string{"US"},
				PreferredCompanySizes: []string{"11-50"},
			},
			1.0,
		},
		{
			"two of three match",
			Criteria{
				PreferredIndustries:   []string{"Software"},
				PreferredRegions:      []string{"EU"},
				PreferredCompanySizes: []string{"11-50"},
			},
			0.67,
		},
		{
			"one of three match",
			Criteria{
				PreferredIndustries:   []string{"Fintech"},
				PreferredRegions:      []string{"EU"},
				PreferredCompanySizes: []string{"11-50"},
			},
			0.33,
		},
		{
			"one of two match",
			Criteria{
				PreferredIndustries: []string{"Software"},
				PreferredRegions:    []string{"EU"},
			},
			0.5,
		},
		{
			"no criteria declared",
			Criteria{},
			0,
		},
		{
			// Declared but empty lists still count in the denominator.
			"declared unmatchable",
			Criteria{
				PreferredIndustries: []string{},
				PreferredRegions:    []string{"US"},
			},
			0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(prospect, tt.criteria), 1e-9)
		})
	}
}

func TestClassify(t *testing.T) {
	prospect := store.Company{Industry: "Software", Region: "US"}

	// Hard industry filter overrides any score.
	status, reason := Classify(prospect, Criteria{RequiredIndustry: []string{"Construction"}}, 1.0)
	assert.Equal(t, store.StatusDisqualified, status)
	assert.Equal(t, ReasonIndustryMismatch, reason)

	// Industry filter is checked before the region filter.
	status, reason = Classify(prospect, Criteria{
		RequiredIndustry: []string{"Construction"},
		RequiredRegion:   []string{"EU"},
	}, 1.0)
	assert.Equal(t, store.StatusDisqualified, status)
	assert.Equal(t, ReasonIndustryMismatch, reason)

	status, reason = Classify(prospect, Criteria{RequiredRegion: []string{"EU"}}, 1.0)
	assert.Equal(t, store.StatusDisqualified, status)
	assert.Equal(t, ReasonRegionMismatch, reason)

	status, reason = Classify(prospect, Criteria{}, 0.5)
	assert.Equal(t, store.StatusQualified, status)
	assert.Empty(t, reason)

	status, reason = Classify(prospect, Criteria{}, 0.49)
	assert.Equal(t, store.StatusDisqualified, status)
	assert.Equal(t, ReasonScoreTooLow, reason)

	status, _ = Classify(prospect, Criteria{MinScoreThreshold: f64Ptr(0.7)}, 0.67)
	assert.Equal(t, store.StatusDisqualified, status)
}

func TestQualifyAndScore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	log := logger.Default()

	icpID, err := st.UpsertICP(ctx, "p", `{}`)
	require.NoError(t, err)

	criteria := Criteria{
		PreferredIndustries: []string{"Software"},
		PreferredRegions:    []string{"US"},
	}
	prospects := []store.Company{
		{Name: "FullMatch", Industry: "Software", Region: "US"},
		{Name: "HalfMatch", Industry: "Software", Region: "EU"},
		{Name: "NoMatch", Industry: "Construction", Region: "EU"},
	}

	q := NewQualifier(st, log)
	qualified := q.QualifyAndScore(ctx, prospects, icpID, criteria)
	// 1.0 and 0.5 both clear the default 0.5 threshold.
	assert.Len(t, qualified, 2)

	lead, err := st.FindLeadByCompanyICP(ctx, "FullMatch", icpID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusQualified, lead.QualificationStatus)
	assert.Equal(t, store.WorkflowNew, lead.Status)
	assert.Equal(t, "Database Prospecting", lead.Source)
	assert.InDelta(t, 1.0, lead.Score, 1e-9)

	lead, err = st.FindLeadByCompanyICP(ctx, "NoMatch", icpID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDisqualified, lead.QualificationStatus)
	assert.Equal(t, ReasonScoreTooLow, lead.QualificationReason)
	assert.Equal(t, store.WorkflowArchived, lead.Status)
}

func TestQualifyAndScore_RerunUpdatesInPlace(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	log := logger.Default()

	icpID, err := st.UpsertICP(ctx, "p", `{}`)
	require.NoError(t, err)

	prospect := store.Company{Name: "Acme", Industry: "Software", Region: "EU"}
	q := NewQualifier(st, log)

	// First pass disqualifies and archives.
	strict := Criteria{
		PreferredIndustries:   []string{"Software"},
		PreferredRegions:      []string{"US"},
		PreferredCompanySizes: []string{"11-50"},
	}
	q.QualifyAndScore(ctx, []store.Company{prospect}, icpID, strict)

	first, err := st.FindLeadByCompanyICP(ctx, "Acme", icpID)
	require.NoError(t, err)
	assert.Equal(t, store.WorkflowArchived, first.Status)

	// Second pass with looser criteria qualifies, reusing the same row.
	loose := Criteria{PreferredIndustries: []string{"Software"}}
	q.QualifyAndScore(ctx, []store.Company{prospect}, icpID, loose)

	second, err := st.FindLeadByCompanyICP(ctx, "Acme", icpID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, store.StatusQualified, second.QualificationStatus)
	// The archived workflow state survives re-qualification.
	assert.Equal(t, store.WorkflowArchived, second.Status)

	leads, err := st.LeadsByICP(ctx, icpID)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}
