// Package export writes qualified-lead sets to downloadable files.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

var leadColumns = []string{
	"lead_id", "score", "company_name", "industry", "region", "website",
	"qualification_status", "status", "collected_date",
}

// Service exports leads for an ICP to csv or excel files under a storage
// directory.
type Service struct {
	store       *store.Store
	storagePath string
	log         logger.Logger
}

// NewService creates an export service rooted at storagePath.
func NewService(st *store.Store, storagePath string, log logger.Logger) *Service {
	os.MkdirAll(storagePath, 0o755)
	return &Service{store: st, storagePath: storagePath, log: log}
}

// ExportLeads writes all leads of an ICP to a file and returns its path.
// Format is "csv" or "excel".
func (s *Service) ExportLeads(ctx context.Context, icpID uint, format string) (string, error) {
	if format != "csv" && format != "excel" {
		return "", fmt.Errorf("invalid format: must be csv or excel")
	}

	leads, err := s.store.LeadsByICP(ctx, icpID)
	if err != nil {
		return "", err
	}

	ext := "csv"
	if format == "excel" {
		ext = "xlsx"
	}
	filename := fmt.Sprintf("leads-icp%d-%s.%s", icpID, time.Now().Format("20060102-150405"), ext)
	path := filepath.Join(s.storagePath, filename)

	if format == "csv" {
		err = s.writeCSV(path, leads)
	} else {
		err = s.writeExcel(path, leads)
	}
	if err != nil {
		return "", err
	}

	s.log.Info("exported leads", "icp_id", icpID, "leads", len(leads), "path", path)
	return path, nil
}

func (s *Service) writeCSV(path string, leads []store.Lead) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(leadColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range leads {
		row := []string{
			strconv.FormatUint(uint64(l.ID), 10),
			fmt.Sprintf("%.2f", l.Score),
			l.CompanyName,
			l.Industry,
			l.Region,
			l.Website,
			l.QualificationStatus,
			l.Status,
			l.CollectedDate.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func (s *Service) writeExcel(path string, leads []store.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leads"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range leadColumns {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, l := range leads {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), l.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), l.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), l.CompanyName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), l.Industry)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), l.Region)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), l.Website)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), l.QualificationStatus)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), l.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), l.CollectedDate.Format(time.RFC3339))
	}

	for i := range leadColumns {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
