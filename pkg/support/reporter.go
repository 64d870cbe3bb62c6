package support

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// MarketSummary is the 7-day industry digest section of a summary report.
type MarketSummary struct {
	KeyTrends             []string `json:"key_trends"`
	OverallSentiment      string   `json:"overall_sentiment"`
	SentimentArticleCount int64    `json:"sentiment_article_count"`
}

// LeadGenSummary is the 7-day qualified-lead section of a summary report.
type LeadGenSummary struct {
	NewQualifiedLeads int64   `json:"new_qualified_leads"`
	TopLeadSource     string  `json:"top_lead_source"`
	AverageLeadScore  float64 `json:"average_lead_score"`
}

// SummaryReport is a multi-section automated company report.
type SummaryReport struct {
	Title              string         `json:"title"`
	GeneratedAt        time.Time      `json:"generated_at"`
	ReportPeriod       string         `json:"report_period"`
	CompanyName        string         `json:"company_name"`
	MarketSummary      MarketSummary  `json:"market_summary"`
	CompetitorActivity []string       `json:"competitor_activity"`
	LeadSummary        LeadGenSummary `json:"lead_generation_summary"`
	ActionItems        []string       `json:"action_items"`
}

// AutomatedReporter assembles periodic summary reports from stored data.
type AutomatedReporter struct {
	store *store.Store
	log   logger.Logger
}

// NewAutomatedReporter creates an automated reporter.
func NewAutomatedReporter(st *store.Store, log logger.Logger) *AutomatedReporter {
	return &AutomatedReporter{store: st, log: log}
}

// SummaryReport builds a weekly-style report for a company: a 7-day market
// digest, competitor news counts, and qualified-lead aggregates. Sections
// with no underlying rows carry explicit placeholders instead of being
// dropped.
func (r *AutomatedReporter) SummaryReport(ctx context.Context, reportType string, companyID uint, competitorIDs []uint, region string) (*SummaryReport, error) {
	company, err := r.store.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -7)
	report := &SummaryReport{
		Title:        fmt.Sprintf("%s Report for %s", titleFor(reportType), company.Name),
		GeneratedAt:  now,
		ReportPeriod: fmt.Sprintf("Data up to %s", now.Format("2006-01-02")),
		CompanyName:  company.Name,
	}

	report.MarketSummary, err = r.marketSummary(ctx, company.Industry, region, since)
	if err != nil {
		return nil, err
	}
	report.CompetitorActivity, err = r.competitorActivity(ctx, competitorIDs, since)
	if err != nil {
		return nil, err
	}
	report.LeadSummary, err = r.leadSummary(ctx, since)
	if err != nil {
		return nil, err
	}

	report.ActionItems = []string{
		"Review market trends and sentiment.",
		"Check competitor news for strategic insights.",
		"Follow up on newly qualified leads.",
	}

	r.log.Info("generated summary report", "company", company.Name, "type", reportType)
	return report, nil
}

func (r *AutomatedReporter) marketSummary(ctx context.Context, industry, region string, since time.Time) (MarketSummary, error) {
	summary := MarketSummary{OverallSentiment: "N/A"}
	if industry == "" {
		summary.KeyTrends = []string{"No industry recorded for this company."}
		return summary, nil
	}

	trends, err := r.store.RecentPublishedTrends(ctx, industry, region, since, 3)
	if err != nil {
		return summary, err
	}
	for _, t := range trends {
		score := "N/A"
		if t.SentimentScore != nil {
			score = fmt.Sprintf("%.2f", *t.SentimentScore)
		}
		summary.KeyTrends = append(summary.KeyTrends, fmt.Sprintf("%s (Sentiment: %s)", t.TrendDescription, score))
	}
	if len(summary.KeyTrends) == 0 {
		summary.KeyTrends = []string{"No market trends recorded in the last 7 days."}
	}

	sent, err := r.store.IndustrySentiment(ctx, industry, since)
	if err != nil {
		return summary, err
	}
	if sent.ArticleCount > 0 && sent.AverageScore != nil {
		summary.OverallSentiment = fmt.Sprintf("%.2f", *sent.AverageScore)
		summary.SentimentArticleCount = sent.ArticleCount
	}
	return summary, nil
}

func (r *AutomatedReporter) competitorActivity(ctx context.Context, competitorIDs []uint, since time.Time) ([]string, error) {
	if len(competitorIDs) == 0 {
		return []string{"No competitors selected for this report."}, nil
	}

	headlines, err := r.store.CompetitorHeadlines(ctx, competitorIDs, since)
	if err != nil {
		return nil, err
	}

	var activity []string
	current := ""
	count := 0
	for _, h := range headlines {
		if h.CompanyName != current {
			if current != "" {
				activity = append(activity, fmt.Sprintf("%s: %d recent news articles found.", current, count))
			}
			current = h.CompanyName
			count = 0
		}
		count++
	}
	if current != "" {
		activity = append(activity, fmt.Sprintf("%s: %d recent news articles found.", current, count))
	}
	if len(activity) == 0 {
		activity = []string{"No significant competitor news found in the last 7 days."}
	}
	return activity, nil
}

func (r *AutomatedReporter) leadSummary(ctx context.Context, since time.Time) (LeadGenSummary, error) {
	stats, err := r.store.RecentQualifiedLeadStats(ctx, since)
	if err != nil {
		return LeadGenSummary{}, err
	}
	summary := LeadGenSummary{
		NewQualifiedLeads: stats.Count,
		TopLeadSource:     "N/A",
		AverageLeadScore:  math.Round(stats.AverageScore*100) / 100,
	}
	if stats.TopSource != "" {
		summary.TopLeadSource = stats.TopSource
	}
	return summary, nil
}

func titleFor(reportType string) string {
	switch reportType {
	case "", "weekly_summary":
		return "Weekly Summary"
	case "monthly_summary":
		return "Monthly Summary"
	default:
		return reportType
	}
}
