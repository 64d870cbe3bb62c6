// Package handlers wires the agent facades to echo routes.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/jordanlanch/bizradar/pkg/api/errors"
	"github.com/jordanlanch/bizradar/pkg/leadgen"
	"github.com/jordanlanch/bizradar/pkg/models"
	"github.com/jordanlanch/bizradar/pkg/store"
)

// LeadGenService is the lead-generation surface the handler needs.
type LeadGenService interface {
	DefineICP(ctx context.Context, profileName string, criteria leadgen.Criteria) (uint, error)
	GetICP(ctx context.Context, profileName string) (*leadgen.ICPProfile, error)
	GenerateLeads(ctx context.Context, profileName string, numLeads int) (*leadgen.LeadReport, error)
}

// LeadExporter writes the leads of an ICP to a file.
type LeadExporter interface {
	ExportLeads(ctx context.Context, icpID uint, format string) (string, error)
}

// LeadGenHandler handles ICP and lead-generation endpoints.
type LeadGenHandler struct {
	service   LeadGenService
	exporter  LeadExporter
	validator *validator.Validate
}

// NewLeadGenHandler creates a lead-generation handler.
func NewLeadGenHandler(service LeadGenService, exporter LeadExporter) *LeadGenHandler {
	return &LeadGenHandler{
		service:   service,
		exporter:  exporter,
		validator: validator.New(),
	}
}

// DefineICP handles POST /icps.
func (h *LeadGenHandler) DefineICP(c echo.Context) error {
	var req models.DefineICPRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	id, err := h.service.DefineICP(c.Request().Context(), req.ProfileName, req.Criteria)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusCreated, models.DefineICPResponse{ICPID: id, ProfileName: req.ProfileName})
}

// GetICP handles GET /icps/:name.
func (h *LeadGenHandler) GetICP(c echo.Context) error {
	name := c.Param("name")
	profile, err := h.service.GetICP(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apierrors.NotFoundError(c, "ICP profile")
		}
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GenerateLeads handles POST /leads/generate.
func (h *LeadGenHandler) GenerateLeads(c echo.Context) error {
	var req models.GenerateLeadsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.service.GenerateLeads(c.Request().Context(), req.ProfileName, req.NumLeads)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apierrors.NotFoundError(c, "ICP profile")
		}
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportLeads handles POST /leads/export.
func (h *LeadGenHandler) ExportLeads(c echo.Context) error {
	var req models.ExportLeadsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	path, err := h.exporter.ExportLeads(c.Request().Context(), req.ICPID, req.Format)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	return c.JSON(http.StatusOK, models.ExportLeadsResponse{FilePath: path})
}
