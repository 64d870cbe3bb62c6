package support

import (
	"context"
	"fmt"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// Agent is the business-support facade: sentiment lookups, news digests,
// reminders and automated reports.
type Agent struct {
	store      *store.Store
	topics     *TopicSentimentAnalyzer
	aggregator *NewsAggregator
	scheduler  *Scheduler
	reporter   *AutomatedReporter
	log        logger.Logger
}

// NewAgent creates a business-support agent. reminderPath is the reminder
// log file location.
func NewAgent(st *store.Store, scorer sentiment.Scorer, reminderPath string, log logger.Logger) *Agent {
	return &Agent{
		store:      st,
		topics:     NewTopicSentimentAnalyzer(st, scorer, log),
		aggregator: NewNewsAggregator(st, log),
		scheduler:  NewScheduler(reminderPath, log),
		reporter:   NewAutomatedReporter(st, log),
		log:        log,
	}
}

// AnalyzePublicSentiment scores stored news coverage of a topic.
func (a *Agent) AnalyzePublicSentiment(ctx context.Context, topic string) (*sentiment.Analysis, error) {
	return a.topics.AnalyzeTopic(ctx, topic, 50)
}

// GetIndustryNews returns a digest of recent articles for an industry.
func (a *Agent) GetIndustryNews(ctx context.Context, industry string, limit int) (*NewsDigest, error) {
	return a.aggregator.IndustryNews(ctx, industry, limit)
}

// GetCompanyNews returns a digest of recent articles for a company, looked
// up by id or ticker.
func (a *Agent) GetCompanyNews(ctx context.Context, companyID uint, ticker string, limit int) (*NewsDigest, error) {
	id, err := a.resolveCompanyID(ctx, companyID, ticker)
	if err != nil {
		return nil, err
	}
	return a.aggregator.CompanyNews(ctx, id, limit)
}

// SetReminder logs a reminder and returns the appended line.
func (a *Agent) SetReminder(task, dueDate, notes string) (string, error) {
	return a.scheduler.AddReminder(task, dueDate, notes)
}

// ViewReminders returns the most recent reminder lines, newest first.
func (a *Agent) ViewReminders(limit int) ([]string, error) {
	return a.scheduler.ViewReminders(limit)
}

// GenerateAutomatedReport builds a summary report for a company (by id or
// ticker) against competitor tickers. Unknown competitor tickers are skipped
// with a warning.
func (a *Agent) GenerateAutomatedReport(ctx context.Context, reportType string, companyID uint, ticker string, competitorTickers []string, region string) (*SummaryReport, error) {
	id, err := a.resolveCompanyID(ctx, companyID, ticker)
	if err != nil {
		return nil, err
	}

	var competitorIDs []uint
	for _, t := range competitorTickers {
		comp, err := a.store.GetCompanyByTicker(ctx, t)
		if err != nil {
			a.log.Warn("competitor ticker not found, skipping", "ticker", t)
			continue
		}
		competitorIDs = append(competitorIDs, comp.ID)
	}

	return a.reporter.SummaryReport(ctx, reportType, id, competitorIDs, region)
}

func (a *Agent) resolveCompanyID(ctx context.Context, companyID uint, ticker string) (uint, error) {
	if companyID != 0 {
		return companyID, nil
	}
	if ticker == "" {
		return 0, fmt.Errorf("a company id or ticker is required")
	}
	company, err := a.store.GetCompanyByTicker(ctx, ticker)
	if err != nil {
		return 0, fmt.Errorf("company with ticker %s not found: %w", ticker, err)
	}
	return company.ID, nil
}
