package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/bizradar/pkg/api/errors"
	"github.com/jordanlanch/bizradar/pkg/models"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// MarketAnalysisService is the analysis surface the handler needs; every
// operation returns a rendered markdown report.
type MarketAnalysisService interface {
	AnalyzeCompetitor(ctx context.Context, ticker, name, region string) (string, error)
	IdentifyMarketTrends(ctx context.Context, industry, region, timeframe string) (string, error)
	PerformSWOT(ctx context.Context, ticker, name string, competitorTickers []string, region string) (string, error)
	AnalyzeMarketSegment(ctx context.Context, segment, industry, region string) (string, error)
}

// CompanyCollector pulls finance data for a ticker into the store.
type CompanyCollector interface {
	CollectCompany(ctx context.Context, ticker, region string) (*store.Company, error)
}

// MarketAnalysisHandler handles analysis endpoints.
type MarketAnalysisHandler struct {
	service   MarketAnalysisService
	collector CompanyCollector
	validator *validator.Validate
}

// NewMarketAnalysisHandler creates a market analysis handler.
func NewMarketAnalysisHandler(service MarketAnalysisService, collector CompanyCollector) *MarketAnalysisHandler {
	return &MarketAnalysisHandler{
		service:   service,
		collector: collector,
		validator: validator.New(),
	}
}

// AnalyzeCompetitor handles POST /analysis/competitor.
func (h *MarketAnalysisHandler) AnalyzeCompetitor(c echo.Context) error {
	var req models.CompetitorAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.AnalyzeCompetitor(c.Request().Context(), req.Ticker, req.Name, req.Region)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.ReportResponse{Report: report})
}

// IdentifyTrends handles POST /analysis/trends.
func (h *MarketAnalysisHandler) IdentifyTrends(c echo.Context) error {
	var req models.TrendReportRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.IdentifyMarketTrends(c.Request().Context(), req.Industry, req.Region, req.Timeframe)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.ReportResponse{Report: report})
}

// PerformSWOT handles POST /analysis/swot.
func (h *MarketAnalysisHandler) PerformSWOT(c echo.Context) error {
	var req models.SWOTRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.PerformSWOT(c.Request().Context(), req.Ticker, req.Name, req.CompetitorTickers, req.Region)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.ReportResponse{Report: report})
}

// AnalyzeSegment handles POST /analysis/segment.
func (h *MarketAnalysisHandler) AnalyzeSegment(c echo.Context) error {
	var req models.SegmentRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.AnalyzeMarketSegment(c.Request().Context(), req.Segment, req.Industry, req.Region)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.ReportResponse{Report: report})
}

// CollectCompany handles POST /companies/collect.
func (h *MarketAnalysisHandler) CollectCompany(c echo.Context) error {
	var req models.CollectCompanyRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	company, err := h.collector.CollectCompany(c.Request().Context(), req.Ticker, req.Region)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, company)
}
