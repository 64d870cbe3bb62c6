package marketanalysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/bizradar/pkg/cache"
	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// Analysis types persisted to the analysis_results table.
const (
	AnalysisTypeCompetitor = "competitor_analysis"
	AnalysisTypeTrends     = "trend_analysis"
	AnalysisTypeSWOT       = "swot_analysis"
	AnalysisTypeSegment    = "segment_analysis"
)

// DataCollector pulls external company data into the store on demand.
type DataCollector interface {
	CollectCompany(ctx context.Context, ticker, region string) (*store.Company, error)
	CollectNews(ctx context.Context, companyName string, numArticles int) ([]store.NewsArticle, error)
}

// Agent is the market-analysis facade: it resolves companies, runs the
// analyzer and renders reports, caching rendered output when a cache is
// configured.
type Agent struct {
	store     *store.Store
	collector DataCollector
	analyzer  *Analyzer
	reporter  *Reporter
	cache     *cache.Client
	cacheTTL  time.Duration
	log       logger.Logger
}

// NewAgent creates a market-analysis agent. cacheClient may be nil, which
// disables report caching.
func NewAgent(st *store.Store, collector DataCollector, cacheClient *cache.Client, cacheTTL time.Duration, log logger.Logger) *Agent {
	return &Agent{
		store:     st,
		collector: collector,
		analyzer:  NewAnalyzer(st, log),
		reporter:  NewReporter(),
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// AnalyzeCompetitor runs a full competitor analysis for a ticker or exact
// company name and returns the rendered markdown report. Unknown tickers are
// collected from the finance source first; unknown names cannot be.
func (a *Agent) AnalyzeCompetitor(ctx context.Context, ticker, name, region string) (string, error) {
	cacheKey := fmt.Sprintf("analysis:competitor:%s%s", ticker, name)
	if cached, ok := a.cached(ctx, cacheKey); ok {
		return cached, nil
	}

	company, err := a.resolveCompany(ctx, ticker, name, region)
	if err != nil {
		return "", err
	}

	if _, err := a.collector.CollectNews(ctx, company.Name, 5); err != nil {
		a.log.Warn("news collection failed, analyzing stored data only", "company", company.Name, "error", err)
	}

	analysis, err := a.analyzer.AnalyzeCompetitor(ctx, company.ID)
	if err != nil {
		return "", err
	}
	a.persistResult(ctx, AnalysisTypeCompetitor, &company.ID, company.Name, analysis)

	report := a.reporter.CompetitorReport(analysis)
	a.cacheReport(ctx, cacheKey, report)
	return report, nil
}

// IdentifyMarketTrends analyzes recent trends for an industry/region and
// returns the rendered report.
func (a *Agent) IdentifyMarketTrends(ctx context.Context, industry, region, timeframe string) (string, error) {
	if timeframe == "" {
		timeframe = "last_month"
	}
	cacheKey := fmt.Sprintf("analysis:trends:%s:%s:%s", industry, region, timeframe)
	if cached, ok := a.cached(ctx, cacheKey); ok {
		return cached, nil
	}

	analysis, err := a.analyzer.AnalyzeTrends(ctx, industry, region, timeframe)
	if err != nil {
		return "", err
	}
	a.persistResult(ctx, AnalysisTypeTrends, nil, industry, analysis)

	report := a.reporter.TrendReport(analysis)
	a.cacheReport(ctx, cacheKey, report)
	return report, nil
}

// PerformSWOT runs a SWOT analysis for a company against a set of
// competitor tickers and returns the rendered report.
func (a *Agent) PerformSWOT(ctx context.Context, ticker, name string, competitorTickers []string, region string) (string, error) {
	company, err := a.resolveCompany(ctx, ticker, name, region)
	if err != nil {
		return "", err
	}

	var competitorIDs []uint
	for _, t := range competitorTickers {
		comp, err := a.resolveCompany(ctx, t, "", region)
		if err != nil {
			a.log.Warn("skipping unresolvable competitor", "ticker", t, "error", err)
			continue
		}
		competitorIDs = append(competitorIDs, comp.ID)
	}

	swot, err := a.analyzer.PerformSWOT(ctx, company.ID, competitorIDs)
	if err != nil {
		return "", err
	}
	a.persistResult(ctx, AnalysisTypeSWOT, &company.ID, company.Name, swot)

	return a.reporter.SWOTReport(swot), nil
}

// AnalyzeMarketSegment profiles a segment within an industry/region and
// returns the rendered report.
func (a *Agent) AnalyzeMarketSegment(ctx context.Context, segment, industry, region string) (string, error) {
	cacheKey := fmt.Sprintf("analysis:segment:%s:%s:%s", segment, industry, region)
	if cached, ok := a.cached(ctx, cacheKey); ok {
		return cached, nil
	}

	analysis, err := a.analyzer.AnalyzeSegment(ctx, segment, industry, region)
	if err != nil {
		return "", err
	}
	a.persistResult(ctx, AnalysisTypeSegment, nil, segment, analysis)

	report := a.reporter.SegmentReport(analysis)
	a.cacheReport(ctx, cacheKey, report)
	return report, nil
}

func (a *Agent) resolveCompany(ctx context.Context, ticker, name, region string) (*store.Company, error) {
	switch {
	case ticker != "":
		company, err := a.store.GetCompanyByTicker(ctx, ticker)
		if err == nil {
			return company, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		a.log.Info("company not stored, collecting from finance source", "ticker", ticker)
		return a.collector.CollectCompany(ctx, ticker, region)
	case name != "":
		company, err := a.store.GetCompanyByName(ctx, name)
		if err == nil {
			return company, nil
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("company %q is not stored and cannot be collected without a ticker", name)
		}
		return nil, err
	default:
		return nil, fmt.Errorf("a ticker or company name is required")
	}
}

func (a *Agent) persistResult(ctx context.Context, analysisType string, targetID *uint, targetName string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		a.log.Error("failed encoding analysis result", "type", analysisType, "error", err)
		return
	}
	_, err = a.store.SaveAnalysisResult(ctx, &store.AnalysisResult{
		AnalysisType:     analysisType,
		TargetEntityID:   targetID,
		TargetEntityName: targetName,
		ResultJSON:       string(raw),
		GeneratedAt:      time.Now(),
	})
	if err != nil {
		a.log.Error("failed persisting analysis result", "type", analysisType, "error", err)
	}
}

func (a *Agent) cached(ctx context.Context, key string) (string, bool) {
	if a.cache == nil {
		return "", false
	}
	report, err := a.cache.Get(ctx, key)
	if err != nil {
		if !cache.IsMiss(err) {
			a.log.Warn("cache lookup failed", "key", key, "error", err)
		}
		return "", false
	}
	a.log.Debug("serving cached report", "key", key)
	return report, true
}

func (a *Agent) cacheReport(ctx context.Context, key, report string) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Set(ctx, key, report, a.cacheTTL); err != nil {
		a.log.Warn("failed caching report", "key", key, "error", err)
	}
}
