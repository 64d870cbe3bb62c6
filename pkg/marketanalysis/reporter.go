package marketanalysis

import (
	"fmt"
	"strings"
	"time"
)

// Reporter renders analyses as markdown documents.
type Reporter struct{}

// NewReporter creates a report renderer.
func NewReporter() *Reporter {
	return &Reporter{}
}

// CompetitorReport renders a competitor analysis.
func (r *Reporter) CompetitorReport(a *CompetitorAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Competitor Analysis Report: %s\n\n", a.CompanyName)
	fmt.Fprintf(&b, "*Analysis Timestamp: %s*\n\n", a.GeneratedAt.Format(time.RFC3339))

	p := a.Profile
	b.WriteString("## Company Profile\n")
	fmt.Fprintf(&b, "- **Industry:** %s\n", orNA(p.Industry))
	fmt.Fprintf(&b, "- **Sector:** %s\n", orNA(p.Sector))
	fmt.Fprintf(&b, "- **Website:** %s\n", orNA(p.Website))
	fmt.Fprintf(&b, "- **Employees:** %s\n", fmtInt(p.EmployeeCount))
	fmt.Fprintf(&b, "- **Summary:** %s\n\n", orNA(p.BusinessSummary))

	b.WriteString("## Financial Highlights\n")
	fmt.Fprintf(&b, "- **Market Cap:** %s\n", fmtScore(p.MarketCap, 0))
	fmt.Fprintf(&b, "- **Revenue:** %s\n", fmtScore(p.Revenue, 0))
	fmt.Fprintf(&b, "- **Growth Rate:** %s\n", fmtScore(p.GrowthRate, 2))
	fmt.Fprintf(&b, "- **Profit Margin:** %s\n\n", fmtScore(p.ProfitMargin, 2))

	b.WriteString("## Insight Scores\n")
	fmt.Fprintf(&b, "- **Innovativeness:** %s\n", fmtScore(p.InnovativenessScore, 2))
	fmt.Fprintf(&b, "- **Hiring:** %s\n", fmtScore(p.HiringScore, 2))
	fmt.Fprintf(&b, "- **Sustainability:** %s\n", fmtScore(p.SustainabilityScore, 2))
	fmt.Fprintf(&b, "- **Insider Sentiment:** %s\n\n", fmtScore(p.InsiderSentimentScore, 2))

	b.WriteString("## Recent News Sentiment (Last 30 Days)\n")
	fmt.Fprintf(&b, "- **Average Score:** %s\n", fmtScore(a.NewsSentiment.AverageScore, 3))
	fmt.Fprintf(&b, "- **Article Count:** %d\n\n", a.NewsSentiment.ArticleCount)

	fmt.Fprintf(&b, "## Summary\n%s\n", a.Summary)
	return b.String()
}

// TrendReport renders a trend analysis.
func (r *Reporter) TrendReport(a *TrendAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Trend Report: %s (%s)\n\n", a.Industry, a.Timeframe)
	fmt.Fprintf(&b, "*Analysis Timestamp: %s*\n\n", a.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Overall Industry Sentiment (News Based)\n")
	fmt.Fprintf(&b, "- **Average Score:** %s\n", fmtScore(a.IndustrySentiment.AverageScore, 3))
	fmt.Fprintf(&b, "- **Article Count:** %d\n\n", a.IndustrySentiment.ArticleCount)

	b.WriteString("## Identified Trends\n")
	if len(a.Trends) == 0 {
		b.WriteString("- No specific trends identified in the database for this period.\n\n")
	} else {
		for i, t := range a.Trends {
			fmt.Fprintf(&b, "### Trend %d: %s\n", i+1, t.TrendDescription)
			fmt.Fprintf(&b, "- **Type:** %s\n", orNA(t.TrendType))
			fmt.Fprintf(&b, "- **Source:** %s\n", orNA(t.Source))
			fmt.Fprintf(&b, "- **Published:** %s\n", fmtDate(t.PublishedDate))
			fmt.Fprintf(&b, "- **Sentiment Score:** %s\n\n", fmtScore(t.SentimentScore, 2))
		}
	}

	fmt.Fprintf(&b, "## Summary\n%s\n", a.Summary)
	return b.String()
}

// SWOTReport renders a SWOT analysis.
func (r *Reporter) SWOTReport(a *SWOTAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# SWOT Analysis Report: %s\n\n", a.CompanyName)
	fmt.Fprintf(&b, "*Analysis Timestamp: %s*\n\n", a.GeneratedAt.Format(time.RFC3339))

	writeQuadrant(&b, "Strengths (Internal, Positive)", a.Strengths)
	writeQuadrant(&b, "Weaknesses (Internal, Negative)", a.Weaknesses)
	writeQuadrant(&b, "Opportunities (External, Positive)", a.Opportunities)
	writeQuadrant(&b, "Threats (External, Negative)", a.Threats)
	return b.String()
}

// SegmentReport renders a market segment analysis.
func (r *Reporter) SegmentReport(a *SegmentAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Segment Analysis Report: %s (%s)\n\n", a.Segment, a.Industry)
	fmt.Fprintf(&b, "*Analysis Timestamp: %s*\n\n", a.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "*Region: %s*\n\n", orNA(a.Region))

	b.WriteString("## Segment Sentiment (Industry News Based)\n")
	fmt.Fprintf(&b, "- **Average Score:** %s\n", fmtScore(a.Sentiment.AverageScore, 3))
	fmt.Fprintf(&b, "- **Article Count:** %d\n\n", a.Sentiment.ArticleCount)

	b.WriteString("## Key Players (Top 10 by Market Cap)\n")
	if len(a.KeyPlayers) == 0 {
		b.WriteString("- No key players identified in the database for this segment/region.\n\n")
	} else {
		b.WriteString("| Name | Market Cap | Growth Rate |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, p := range a.KeyPlayers {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Name, fmtScore(p.MarketCap, 0), fmtScore(p.GrowthRate, 2))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Relevant Trends\n")
	if len(a.Trends) == 0 {
		b.WriteString("- No specific trends identified in the database for this segment/region.\n\n")
	} else {
		for _, t := range a.Trends {
			fmt.Fprintf(&b, "- %s (Source: %s, Sentiment: %s)\n", t.TrendDescription, orNA(t.Source), fmtScore(t.SentimentScore, 2))
		}
		b.WriteString("\n")
	}

	if a.Industry == "Real Estate" {
		b.WriteString("## Recent Real Estate Projects (India)\n")
		if len(a.Projects) == 0 {
			b.WriteString("- No recent real estate projects found in the database for this region.\n\n")
		} else {
			b.WriteString("| Project | Developer | City | Status | RERA ID |\n")
			b.WriteString("| --- | --- | --- | --- | --- |\n")
			for _, p := range a.Projects {
				rera := "N/A"
				if p.RERARegistrationID != nil {
					rera = *p.RERARegistrationID
				}
				fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
					p.ProjectName, orNA(p.DeveloperName), orNA(p.City), orNA(p.Status), rera)
			}
			b.WriteString("\n")
		}
	}

	if a.Industry == "Architecture & Planning" {
		b.WriteString("## Recent Architectural Firms (India)\n")
		if len(a.Firms) == 0 {
			b.WriteString("- No recent architectural firms found in the database for this region.\n\n")
		} else {
			b.WriteString("| Firm | City | Specialization |\n")
			b.WriteString("| --- | --- | --- |\n")
			for _, f := range a.Firms {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", f.FirmName, orNA(f.City), orNA(f.Specialization))
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "## Summary\n%s\n", a.Summary)
	return b.String()
}

func writeQuadrant(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "## %s\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func fmtInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}
