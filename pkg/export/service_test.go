package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jordanlanch/bizradar/pkg/database"
	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_fk=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	st := store.New(db, logger.Default())
	return NewService(st, t.TempDir(), logger.Default()), st
}

func seedLeads(t *testing.T, st *store.Store, icpID uint) {
	t.Helper()
	ctx := context.Background()
	leads := []store.Lead{
		{ICPID: &icpID, CompanyName: "Acme Corp", Industry: "Software", Region: "US", Score: 1.0, QualificationStatus: store.StatusQualified, Status: store.WorkflowNew, CollectedDate: time.Now()},
		{ICPID: &icpID, CompanyName: "Beta LLC", Industry: "Fintech", Region: "EU", Score: 0.67, QualificationStatus: store.StatusQualified, Status: store.WorkflowNew, CollectedDate: time.Now()},
	}
	for i := range leads {
		_, err := st.AddLead(ctx, &leads[i])
		require.NoError(t, err)
	}
}

func TestExportLeads_CSV(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	icpID, err := st.UpsertICP(ctx, "p", `{}`)
	require.NoError(t, err)
	seedLeads(t, st, icpID)

	path, err := svc.ExportLeads(ctx, icpID, "csv")
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, leadColumns, rows[0])
	// best score first
	assert.Equal(t, "Acme Corp", rows[1][2])
	assert.Equal(t, "1.00", rows[1][1])
	assert.Equal(t, "Beta LLC", rows[2][2])
}

func TestExportLeads_Excel(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	icpID, err := st.UpsertICP(ctx, "p", `{}`)
	require.NoError(t, err)
	seedLeads(t, st, icpID)

	path, err := svc.ExportLeads(ctx, icpID, "excel")
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "company_name", rows[0][2])
	assert.Equal(t, "Acme Corp", rows[1][2])
}

func TestExportLeads_InvalidFormat(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportLeads(context.Background(), 1, "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExportLeads_EmptyICP(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	icpID, err := st.UpsertICP(ctx, "empty", `{}`)
	require.NoError(t, err)

	// No leads still produces a file with just the header.
	path, err := svc.ExportLeads(ctx, icpID, "csv")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
