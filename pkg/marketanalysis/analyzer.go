// Package marketanalysis derives competitor, trend, SWOT and market-segment
// analyses from stored company and news data, and renders them as markdown.
package marketanalysis

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// SWOT thresholds on company metrics and trend sentiment.
const (
	strongProfitMargin = 0.15
	highInnovativeness = 0.7
	lowGrowthRate      = 0.05
	lowHiringScore     = 0.5
	positiveTrendScore = 0.1
	negativeTrendScore = -0.1
)

// CompetitorAnalysis is the raw outcome of analyzing one company.
type CompetitorAnalysis struct {
	CompanyID     uint                   `json:"company_id"`
	CompanyName   string                 `json:"company_name"`
	Profile       store.Company          `json:"profile"`
	NewsSentiment store.SentimentSummary `json:"recent_news_sentiment"`
	Summary       string                 `json:"summary"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

// TrendAnalysis summarizes an industry's recent trend observations.
type TrendAnalysis struct {
	Industry          string                 `json:"industry"`
	Region            string                 `json:"region"`
	Timeframe         string                 `json:"timeframe"`
	IndustrySentiment store.SentimentSummary `json:"overall_industry_sentiment"`
	Trends            []store.MarketTrend    `json:"identified_trends"`
	Summary           string                 `json:"summary"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// SWOTAnalysis holds the four derived quadrants for a company.
type SWOTAnalysis struct {
	CompanyID     uint      `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	Strengths     []string  `json:"strengths"`
	Weaknesses    []string  `json:"weaknesses"`
	Opportunities []string  `json:"opportunities"`
	Threats       []string  `json:"threats"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// SegmentAnalysis profiles a market segment inside an industry/region.
type SegmentAnalysis struct {
	Segment     string                    `json:"segment"`
	Industry    string                    `json:"industry"`
	Region      string                    `json:"region"`
	KeyPlayers  []store.Company           `json:"key_players"`
	Sentiment   store.SentimentSummary    `json:"segment_sentiment"`
	Trends      []store.MarketTrend       `json:"relevant_trends"`
	Projects    []store.RealEstateProject `json:"recent_real_estate_projects,omitempty"`
	Firms       []store.ArchitecturalFirm `json:"recent_architectural_firms,omitempty"`
	Summary     string                    `json:"summary"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

// Analyzer computes analyses from stored data.
type Analyzer struct {
	store *store.Store
	log   logger.Logger
}

// NewAnalyzer creates a market analyzer.
func NewAnalyzer(st *store.Store, log logger.Logger) *Analyzer {
	return &Analyzer{store: st, log: log}
}

// AnalyzeCompetitor builds a competitor profile with its 30-day news
// sentiment.
func (a *Analyzer) AnalyzeCompetitor(ctx context.Context, companyID uint) (*CompetitorAnalysis, error) {
	company, err := a.store.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -30)
	newsSentiment, err := a.store.CompanySentiment(ctx, companyID, since)
	if err != nil {
		return nil, err
	}

	return &CompetitorAnalysis{
		CompanyID:     companyID,
		CompanyName:   company.Name,
		Profile:       *company,
		NewsSentiment: newsSentiment,
		Summary: fmt.Sprintf("Basic analysis for %s. Recent news sentiment score: %s based on %d articles.",
			company.Name, fmtScore(newsSentiment.AverageScore, 2), newsSentiment.ArticleCount),
		GeneratedAt: time.Now(),
	}, nil
}

// AnalyzeTrends gathers the last 30 days of industry news sentiment and
// stored trend observations.
func (a *Analyzer) AnalyzeTrends(ctx context.Context, industry, region, timeframe string) (*TrendAnalysis, error) {
	since := time.Now().AddDate(0, 0, -30)

	industrySentiment, err := a.store.IndustrySentiment(ctx, industry, since)
	if err != nil {
		return nil, err
	}
	trends, err := a.store.RecentTrends(ctx, industry, region, since, 10)
	if err != nil {
		return nil, err
	}

	return &TrendAnalysis{
		Industry:          industry,
		Region:            region,
		Timeframe:         timeframe,
		IndustrySentiment: industrySentiment,
		Trends:            trends,
		Summary: fmt.Sprintf("Identified %d recent trends for %s in %s. Overall sentiment score: %s.",
			len(trends), industry, region, fmtScore(industrySentiment.AverageScore, 2)),
		GeneratedAt: time.Now(),
	}, nil
}

// PerformSWOT derives the four quadrants from a company's metrics, the
// industry's trend sentiment, and its competitors' market caps. Quadrants
// with no signal get a placeholder bullet.
func (a *Analyzer) PerformSWOT(ctx context.Context, companyID uint, competitorIDs []uint) (*SWOTAnalysis, error) {
	company, err := a.store.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	swot := &SWOTAnalysis{
		CompanyID:   companyID,
		CompanyName: company.Name,
		GeneratedAt: time.Now(),
	}

	if company.ProfitMargin != nil && *company.ProfitMargin > strongProfitMargin {
		swot.Strengths = append(swot.Strengths,
			fmt.Sprintf("Strong profit margin (%.1f%%)", *company.ProfitMargin*100))
	}
	if company.InnovativenessScore != nil && *company.InnovativenessScore > highInnovativeness {
		swot.Strengths = append(swot.Strengths,
			fmt.Sprintf("High innovativeness score (%.2f)", *company.InnovativenessScore))
	}

	if company.GrowthRate != nil && *company.GrowthRate < lowGrowthRate {
		swot.Weaknesses = append(swot.Weaknesses,
			fmt.Sprintf("Low revenue growth rate (%.1f%%)", *company.GrowthRate*100))
	}
	if company.HiringScore != nil && *company.HiringScore < lowHiringScore {
		swot.Weaknesses = append(swot.Weaknesses,
			fmt.Sprintf("Potentially slow hiring momentum (%.2f)", *company.HiringScore))
	}

	positive, err := a.store.PositiveTrends(ctx, company.Industry, company.Region, positiveTrendScore, 3)
	if err != nil {
		return nil, err
	}
	for _, t := range positive {
		swot.Opportunities = append(swot.Opportunities,
			fmt.Sprintf("Emerging industry trend: %s", t.TrendDescription))
	}

	marketCapFloor := 0.0
	if company.MarketCap != nil {
		marketCapFloor = *company.MarketCap
	}
	stronger, err := a.store.StrongerCompetitors(ctx, competitorIDs, marketCapFloor, 3)
	if err != nil {
		return nil, err
	}
	for _, comp := range stronger {
		swot.Threats = append(swot.Threats,
			fmt.Sprintf("Strong competitor: %s (Market Cap: %s)", comp.Name, fmtScore(comp.MarketCap, 0)))
	}

	negative, err := a.store.NegativeTrends(ctx, company.Industry, company.Region, negativeTrendScore, 2)
	if err != nil {
		return nil, err
	}
	for _, t := range negative {
		swot.Threats = append(swot.Threats,
			fmt.Sprintf("Concerning industry trend: %s", t.TrendDescription))
	}

	if len(swot.Strengths) == 0 {
		swot.Strengths = []string{"No specific strengths identified from available data."}
	}
	if len(swot.Weaknesses) == 0 {
		swot.Weaknesses = []string{"No specific weaknesses identified from available data."}
	}
	if len(swot.Opportunities) == 0 {
		swot.Opportunities = []string{"No specific opportunities identified from available data."}
	}
	if len(swot.Threats) == 0 {
		swot.Threats = []string{"No specific threats identified from available data."}
	}

	return swot, nil
}

// AnalyzeSegment profiles a market segment: top players by market cap, a
// 90-day sentiment window, recent trends, plus real-estate or architecture
// extras for those industries.
func (a *Analyzer) AnalyzeSegment(ctx context.Context, segment, industry, region string) (*SegmentAnalysis, error) {
	players, err := a.store.TopCompaniesByMarketCap(ctx, industry, region, 10)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -90)
	sent, err := a.store.IndustrySentiment(ctx, industry, since)
	if err != nil {
		return nil, err
	}
	trends, err := a.store.RecentTrends(ctx, industry, region, since, 5)
	if err != nil {
		return nil, err
	}

	analysis := &SegmentAnalysis{
		Segment:     segment,
		Industry:    industry,
		Region:      region,
		KeyPlayers:  players,
		Sentiment:   sent,
		Trends:      trends,
		GeneratedAt: time.Now(),
	}

	switch industry {
	case "Real Estate":
		projects, err := a.store.RecentProjectsByRegion(ctx, region, 10)
		if err != nil {
			return nil, err
		}
		analysis.Projects = projects
	case "Architecture & Planning":
		firms, err := a.store.RecentFirmsByRegion(ctx, region, 10)
		if err != nil {
			return nil, err
		}
		analysis.Firms = firms
	}

	analysis.Summary = fmt.Sprintf("Analysis for segment '%s' in '%s' (%s). Identified %d key players. Overall sentiment: %s.",
		segment, industry, region, len(players), fmtScore(sent.AverageScore, 2))
	return analysis, nil
}

// fmtScore renders a nullable metric, "N/A" when absent.
func fmtScore(v *float64, decimals int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}
