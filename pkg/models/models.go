// Package models defines the HTTP request and response types.
package models

import "github.com/jordanlanch/bizradar/pkg/leadgen"

// ErrorResponse is the shared error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DefineICPRequest creates or replaces an ICP profile.
type DefineICPRequest struct {
	ProfileName string           `json:"profile_name" validate:"required"`
	Criteria    leadgen.Criteria `json:"criteria" validate:"required"`
}

// DefineICPResponse returns the stored profile id.
type DefineICPResponse struct {
	ICPID       uint   `json:"icp_id"`
	ProfileName string `json:"profile_name"`
}

// GenerateLeadsRequest triggers a lead generation run for a stored ICP.
type GenerateLeadsRequest struct {
	ProfileName string `json:"profile_name" validate:"required"`
	NumLeads    int    `json:"num_leads" validate:"omitempty,min=1,max=100"`
}

// ExportLeadsRequest exports the leads of an ICP to a file.
type ExportLeadsRequest struct {
	ICPID  uint   `json:"icp_id" validate:"required"`
	Format string `json:"format" validate:"required,oneof=csv excel"`
}

// ExportLeadsResponse returns the generated file location.
type ExportLeadsResponse struct {
	FilePath string `json:"file_path"`
}

// CompetitorAnalysisRequest analyzes one competitor by ticker or name.
type CompetitorAnalysisRequest struct {
	Ticker string `json:"ticker" validate:"required_without=Name"`
	Name   string `json:"name" validate:"required_without=Ticker"`
	Region string `json:"region"`
}

// TrendReportRequest analyzes recent trends for an industry/region.
type TrendReportRequest struct {
	Industry  string `json:"industry" validate:"required"`
	Region    string `json:"region"`
	Timeframe string `json:"timeframe"`
}

// SWOTRequest runs a SWOT analysis against competitor tickers.
type SWOTRequest struct {
	Ticker            string   `json:"ticker" validate:"required_without=Name"`
	Name              string   `json:"name" validate:"required_without=Ticker"`
	CompetitorTickers []string `json:"competitor_tickers"`
	Region            string   `json:"region"`
}

// SegmentRequest analyzes a market segment within an industry.
type SegmentRequest struct {
	Segment  string `json:"segment" validate:"required"`
	Industry string `json:"industry" validate:"required"`
	Region   string `json:"region"`
}

// ReportResponse wraps a rendered markdown report.
type ReportResponse struct {
	Report string `json:"report"`
}

// TopicSentimentRequest scores stored news coverage of a topic.
type TopicSentimentRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// ReminderRequest logs one reminder.
type ReminderRequest struct {
	Task    string `json:"task" validate:"required"`
	DueDate string `json:"due_date" validate:"required"`
	Notes   string `json:"notes"`
}

// ReminderResponse returns the appended log line.
type ReminderResponse struct {
	LogEntry string `json:"log_entry"`
}

// RemindersResponse returns recent reminder lines, newest first.
type RemindersResponse struct {
	Reminders []string `json:"reminders"`
}

// SummaryReportRequest builds an automated summary report for a company.
type SummaryReportRequest struct {
	ReportType        string   `json:"report_type"`
	CompanyID         uint     `json:"company_id" validate:"required_without=Ticker"`
	Ticker            string   `json:"ticker" validate:"required_without=CompanyID"`
	CompetitorTickers []string `json:"competitor_tickers"`
	Region            string   `json:"region"`
}

// CollectCompanyRequest pulls finance data for a ticker into the store.
type CollectCompanyRequest struct {
	Ticker string `json:"ticker" validate:"required"`
	Region string `json:"region"`
}
