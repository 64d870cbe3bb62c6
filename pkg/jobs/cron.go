// Package jobs schedules recurring background work.
package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
	"github.com/jordanlanch/bizradar/pkg/support"
)

// AnalysisTypeWeeklySummary marks automated summary rows in analysis_results.
const AnalysisTypeWeeklySummary = "automated_weekly_summary"

// CronManager runs the scheduled summary-report job.
type CronManager struct {
	cron     *cron.Cron
	support  *support.Agent
	store    *store.Store
	ticker   string
	region   string
	schedule string
	log      logger.Logger
}

// NewCronManager creates a cron manager that generates a recurring summary
// report for the configured ticker.
func NewCronManager(supportAgent *support.Agent, st *store.Store, ticker, region, schedule string, log logger.Logger) *CronManager {
	return &CronManager{
		cron:     cron.New(),
		support:  supportAgent,
		store:    st,
		ticker:   ticker,
		region:   region,
		schedule: schedule,
		log:      log,
	}
}

// SetupJobs registers the scheduled jobs.
func (cm *CronManager) SetupJobs() error {
	_, err := cm.cron.AddFunc(cm.schedule, cm.runWeeklySummary)
	if err != nil {
		return err
	}
	cm.log.Info("cron jobs configured", "schedule", cm.schedule, "ticker", cm.ticker)
	return nil
}

// Start starts the cron scheduler.
func (cm *CronManager) Start() {
	cm.log.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the cron scheduler.
func (cm *CronManager) Stop() {
	cm.log.Info("stopping cron scheduler")
	cm.cron.Stop()
}

func (cm *CronManager) runWeeklySummary() {
	if cm.ticker == "" {
		cm.log.Warn("no report ticker configured, skipping weekly summary")
		return
	}

	cm.log.Info("running weekly summary job", "ticker", cm.ticker)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := cm.support.GenerateAutomatedReport(ctx, "weekly_summary", 0, cm.ticker, nil, cm.region)
	if err != nil {
		cm.log.Error("weekly summary job failed", "ticker", cm.ticker, "error", err)
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		cm.log.Error("failed encoding weekly summary", "error", err)
		return
	}
	_, err = cm.store.SaveAnalysisResult(ctx, &store.AnalysisResult{
		AnalysisType:     AnalysisTypeWeeklySummary,
		TargetEntityName: report.CompanyName,
		ResultJSON:       string(raw),
		GeneratedAt:      time.Now(),
	})
	if err != nil {
		cm.log.Error("failed persisting weekly summary", "error", err)
		return
	}
	cm.log.Info("weekly summary job completed", "company", report.CompanyName)
}
