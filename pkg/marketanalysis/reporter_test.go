package marketanalysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/bizradar/pkg/store"
)

func TestCompetitorReport_NAFallbacks(t *testing.T) {
	r := NewReporter()
	report := r.CompetitorReport(&CompetitorAnalysis{
		CompanyName: "Bare Co",
		Profile:     store.Company{Name: "Bare Co"},
		GeneratedAt: time.Now(),
	})

	assert.Contains(t, report, "# Competitor Analysis Report: Bare Co")
	assert.Contains(t, report, "- **Industry:** N/A")
	assert.Contains(t, report, "- **Employees:** N/A")
	assert.Contains(t, report, "- **Market Cap:** N/A")
	assert.Contains(t, report, "- **Average Score:** N/A")
	assert.Contains(t, report, "- **Article Count:** 0")
}

func TestTrendReport_NoTrends(t *testing.T) {
	r := NewReporter()
	report := r.TrendReport(&TrendAnalysis{
		Industry:    "Software",
		Region:      "US",
		Timeframe:   "last_month",
		GeneratedAt: time.Now(),
	})

	assert.Contains(t, report, "- No specific trends identified in the database for this period.")
}

func TestSWOTReport_RendersQuadrants(t *testing.T) {
	r := NewReporter()
	report := r.SWOTReport(&SWOTAnalysis{
		CompanyName:   "Acme Corp",
		Strengths:     []string{"Strong profit margin (22.0%)"},
		Weaknesses:    []string{"No specific weaknesses identified from available data."},
		Opportunities: []string{"Emerging industry trend: AI adoption"},
		Threats:       []string{"Strong competitor: Giant Rival (Market Cap: 5000000000)"},
		GeneratedAt:   time.Now(),
	})

	assert.Contains(t, report, "## Strengths (Internal, Positive)")
	assert.Contains(t, report, "- Strong profit margin (22.0%)")
	assert.Contains(t, report, "## Weaknesses (Internal, Negative)")
	assert.Contains(t, report, "## Opportunities (External, Positive)")
	assert.Contains(t, report, "## Threats (External, Negative)")
}

func TestSegmentReport_TablesAndExtras(t *testing.T) {
	r := NewReporter()
	rera := "PRM/KA/RERA/1"
	report := r.SegmentReport(&SegmentAnalysis{
		Segment:  "Residential",
		Industry: "Real Estate",
		Region:   "Karnataka",
		KeyPlayers: []store.Company{
			{Name: "Prestige Group", MarketCap: f64Ptr(6e10)},
		},
		Projects: []store.RealEstateProject{
			{ProjectName: "Lakeside Habitat", DeveloperName: "Prestige Group", City: "Bengaluru", Status: "Completed", RERARegistrationID: &rera},
		},
		GeneratedAt: time.Now(),
	})

	assert.Contains(t, report, "| Name | Market Cap | Growth Rate |")
	assert.Contains(t, report, "| Prestige Group | 60000000000 | N/A |")
	assert.Contains(t, report, "## Recent Real Estate Projects (India)")
	assert.Contains(t, report, "| Lakeside Habitat | Prestige Group | Bengaluru | Completed | PRM/KA/RERA/1 |")
}
