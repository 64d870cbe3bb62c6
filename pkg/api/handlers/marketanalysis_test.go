package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/bizradar/pkg/models"
	"github.com/jordanlanch/bizradar/pkg/store"
)

type stubAnalysisService struct {
	report string
	err    error

	lastTicker   string
	lastName     string
	lastIndustry string
	lastSegment  string
}

func (s *stubAnalysisService) AnalyzeCompetitor(ctx context.Context, ticker, name, region string) (string, error) {
	s.lastTicker = ticker
	s.lastName = name
	return s.report, s.err
}

func (s *stubAnalysisService) IdentifyMarketTrends(ctx context.Context, industry, region, timeframe string) (string, error) {
	s.lastIndustry = industry
	return s.report, s.err
}

func (s *stubAnalysisService) PerformSWOT(ctx context.Context, ticker, name string, competitorTickers []string, region string) (string, error) {
	s.lastTicker = ticker
	return s.report, s.err
}

func (s *stubAnalysisService) AnalyzeMarketSegment(ctx context.Context, segment, industry, region string) (string, error) {
	s.lastSegment = segment
	s.lastIndustry = industry
	return s.report, s.err
}

type stubCompanyCollector struct {
	company *store.Company
	err     error

	lastTicker string
}

func (s *stubCompanyCollector) CollectCompany(ctx context.Context, ticker, region string) (*store.Company, error) {
	s.lastTicker = ticker
	return s.company, s.err
}

func TestAnalyzeCompetitor_ByTicker(t *testing.T) {
	service := &stubAnalysisService{report: "# Competitor Analysis Report: Acme Corp"}
	h := NewMarketAnalysisHandler(service, &stubCompanyCollector{})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/analysis/competitor", `{"ticker":"ACME"}`)

	require.NoError(t, h.AnalyzeCompetitor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ACME", service.lastTicker)

	var resp models.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.report, resp.Report)
}

func TestAnalyzeCompetitor_RequiresTickerOrName(t *testing.T) {
	h := NewMarketAnalysisHandler(&stubAnalysisService{}, &stubCompanyCollector{})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/analysis/competitor", `{"region":"US"}`)

	require.NoError(t, h.AnalyzeCompetitor(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeCompetitor_ServiceError(t *testing.T) {
	service := &stubAnalysisService{err: errors.New("boom")}
	h := NewMarketAnalysisHandler(service, &stubCompanyCollector{})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/analysis/competitor", `{"name":"Acme Corp"}`)

	require.NoError(t, h.AnalyzeCompetitor(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Error)
	assert.NotContains(t, resp.Message, "boom")
}

func TestIdentifyTrends_RequiresIndustry(t *testing.T) {
	h := NewMarketAnalysisHandler(&stubAnalysisService{}, &stubCompanyCollector{})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/analysis/trends", `{"region":"US"}`)

	require.NoError(t, h.IdentifyTrends(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeSegment_Success(t *testing.T) {
	service := &stubAnalysisService{report: "# Market Segment Analysis Report: Residential (Real Estate)"}
	h := NewMarketAnalysisHandler(service, &stubCompanyCollector{})

	body := `{"segment":"Residential","industry":"Real Estate","region":"Karnataka"}`
	c, rec := newJSONContext(http.MethodPost, "/api/v1/analysis/segment", body)

	require.NoError(t, h.AnalyzeSegment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Residential", service.lastSegment)
	assert.Equal(t, "Real Estate", service.lastIndustry)
}

func TestCollectCompany_Success(t *testing.T) {
	ticker := "ACME"
	collector := &stubCompanyCollector{
		company: &store.Company{ID: 1, Name: "Acme Corp", TickerSymbol: &ticker},
	}
	h := NewMarketAnalysisHandler(&stubAnalysisService{}, collector)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/companies/collect", `{"ticker":"ACME","region":"US"}`)

	require.NoError(t, h.CollectCompany(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ACME", collector.lastTicker)

	var resp store.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Acme Corp", resp.Name)
}

func TestCollectCompany_RequiresTicker(t *testing.T) {
	h := NewMarketAnalysisHandler(&stubAnalysisService{}, &stubCompanyCollector{})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/companies/collect", `{"region":"US"}`)

	require.NoError(t, h.CollectCompany(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
