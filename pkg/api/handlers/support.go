package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/bizradar/pkg/api/errors"
	"github.com/jordanlanch/bizradar/pkg/models"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
	"github.com/jordanlanch/bizradar/pkg/support"
)

// SupportService is the business-support surface the handler needs.
type SupportService interface {
	AnalyzePublicSentiment(ctx context.Context, topic string) (*sentiment.Analysis, error)
	GetIndustryNews(ctx context.Context, industry string, limit int) (*support.NewsDigest, error)
	GetCompanyNews(ctx context.Context, companyID uint, ticker string, limit int) (*support.NewsDigest, error)
	SetReminder(task, dueDate, notes string) (string, error)
	ViewReminders(limit int) ([]string, error)
	GenerateAutomatedReport(ctx context.Context, reportType string, companyID uint, ticker string, competitorTickers []string, region string) (*support.SummaryReport, error)
}

// SupportHandler handles business-support endpoints.
type SupportHandler struct {
	service   SupportService
	validator *validator.Validate
}

// NewSupportHandler creates a business-support handler.
func NewSupportHandler(service SupportService) *SupportHandler {
	return &SupportHandler{service: service, validator: validator.New()}
}

// TopicSentiment handles POST /support/sentiment.
func (h *SupportHandler) TopicSentiment(c echo.Context) error {
	var req models.TopicSentimentRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	analysis, err := h.service.AnalyzePublicSentiment(c.Request().Context(), req.Topic)
	if err != nil {
		return apierrors.BadRequestError(c, err.Error())
	}
	return c.JSON(http.StatusOK, analysis)
}

// IndustryNews handles GET /support/news/industry/:industry.
func (h *SupportHandler) IndustryNews(c echo.Context) error {
	industry := c.Param("industry")
	limit := queryInt(c, "limit", 10)

	digest, err := h.service.GetIndustryNews(c.Request().Context(), industry, limit)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, digest)
}

// CompanyNews handles GET /support/news/company with id or ticker query
// params.
func (h *SupportHandler) CompanyNews(c echo.Context) error {
	companyID := uint(queryInt(c, "company_id", 0))
	ticker := c.QueryParam("ticker")
	if companyID == 0 && ticker == "" {
		return apierrors.BadRequestError(c, "A company_id or ticker query parameter is required.")
	}
	limit := queryInt(c, "limit", 10)

	digest, err := h.service.GetCompanyNews(c.Request().Context(), companyID, ticker, limit)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apierrors.NotFoundError(c, "company")
		}
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, digest)
}

// SetReminder handles POST /support/reminders.
func (h *SupportHandler) SetReminder(c echo.Context) error {
	var req models.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	entry, err := h.service.SetReminder(req.Task, req.DueDate, req.Notes)
	if err != nil {
		return apierrors.BadRequestError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, models.ReminderResponse{LogEntry: entry})
}

// ViewReminders handles GET /support/reminders.
func (h *SupportHandler) ViewReminders(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	reminders, err := h.service.ViewReminders(limit)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if reminders == nil {
		reminders = []string{}
	}
	return c.JSON(http.StatusOK, models.RemindersResponse{Reminders: reminders})
}

// SummaryReport handles POST /support/reports/summary.
func (h *SupportHandler) SummaryReport(c echo.Context) error {
	var req models.SummaryReportRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.GenerateAutomatedReport(c.Request().Context(),
		req.ReportType, req.CompanyID, req.Ticker, req.CompetitorTickers, req.Region)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apierrors.NotFoundError(c, "company")
		}
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func queryInt(c echo.Context, name string, fallback int) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
