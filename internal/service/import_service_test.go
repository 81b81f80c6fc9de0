package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-parts-store/internal/model"
	"go-parts-store/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestImportService(jobRepo *importJobRepoMock, productRepo *productRepoMock, exportDir string) ImportService {
	hub := ws.NewHub()
	go hub.Run()
	return NewImportService(jobRepo, productRepo, hub, exportDir)
}

// terminalJob wires the Update expectation so the test can wait for the
// background run to reach completed or failed, and receives a copy of the
// job row as it looked at that point.
func terminalJob(jobRepo *importJobRepoMock) <-chan model.ImportJob {
	done := make(chan model.ImportJob, 1)
	jobRepo.On("Update", mock.AnythingOfType("*model.ImportJob")).Return(nil).Run(func(args mock.Arguments) {
		job := args.Get(0).(*model.ImportJob)
		if job.Status == model.ImportJobStatusCompleted || job.Status == model.ImportJobStatusFailed {
			done <- *job
		}
	})
	return done
}

func waitForJob(t *testing.T, done <-chan model.ImportJob) model.ImportJob {
	t.Helper()
	select {
	case job := <-done:
		return job
	case <-time.After(5 * time.Second):
		t.Fatal("job did not reach a terminal status")
		return model.ImportJob{}
	}
}

func writeImportCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestImportJobCompletesWithRowCounters(t *testing.T) {
	path := writeImportCSV(t,
		"sku,name,description,price,sale_price,stock",
		"ENG-0001,Oil Filter,Spin-on,12.99,9.99,120",
		"BRK-0001,Brake Pads,,45.00,,40",
		"SUS-0001,Shock Absorber,,89.50,120.00,", // sale above price
	)

	jobRepo := new(importJobRepoMock)
	jobRepo.On("Create", mock.AnythingOfType("*model.ImportJob")).Return(nil)
	done := terminalJob(jobRepo)

	productRepo := new(productRepoMock)
	productRepo.On("UpsertBySKU", mock.AnythingOfType("*model.Product")).Return(nil)

	svc := newTestImportService(jobRepo, productRepo, t.TempDir())
	_, err := svc.StartImport(path, "products.csv")
	require.NoError(t, err)

	job := waitForJob(t, done)
	assert.Equal(t, model.ImportJobStatusCompleted, job.Status)
	assert.Equal(t, 3, job.TotalRows)
	assert.Equal(t, 3, job.ProcessedRows)
	assert.Equal(t, 2, job.SucceededRows)
	assert.Equal(t, 1, job.ErrorCount)
	assert.Contains(t, job.LastError, "sale price")
	require.NotNil(t, job.StartedAt)
	require.NotNil(t, job.FinishedAt)
	productRepo.AssertNumberOfCalls(t, "UpsertBySKU", 2)
}

func TestImportJobFailsWhenFileUnreadable(t *testing.T) {
	jobRepo := new(importJobRepoMock)
	jobRepo.On("Create", mock.AnythingOfType("*model.ImportJob")).Return(nil)
	done := terminalJob(jobRepo)

	svc := newTestImportService(jobRepo, new(productRepoMock), t.TempDir())
	_, err := svc.StartImport(filepath.Join(t.TempDir(), "missing.csv"), "missing.csv")
	require.NoError(t, err)

	job := waitForJob(t, done)
	assert.Equal(t, model.ImportJobStatusFailed, job.Status)
	assert.Contains(t, job.LastError, "cannot open")
	assert.Equal(t, 1, job.ErrorCount)
}

func TestStartImportReturnsDetachedJob(t *testing.T) {
	path := writeImportCSV(t, "ENG-0001,Oil Filter,,12.99")

	var created *model.ImportJob
	jobRepo := new(importJobRepoMock)
	jobRepo.On("Create", mock.AnythingOfType("*model.ImportJob")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(0).(*model.ImportJob)
	})
	done := terminalJob(jobRepo)

	productRepo := new(productRepoMock)
	productRepo.On("UpsertBySKU", mock.AnythingOfType("*model.Product")).Return(nil)

	svc := newTestImportService(jobRepo, productRepo, t.TempDir())
	job, err := svc.StartImport(path, "products.csv")
	require.NoError(t, err)

	waitForJob(t, done)

	// The caller's record is a snapshot of the pending job; the background
	// run mutates its own instance only
	assert.NotSame(t, created, job)
	assert.Equal(t, model.ImportJobStatusPending, job.Status)
	assert.Zero(t, job.ProcessedRows)
	assert.Nil(t, job.StartedAt)
}

func TestExportWritesCatalogCSV(t *testing.T) {
	sale := 9.99
	products := []model.Product{
		{SKU: "ENG-0001", Name: "Oil Filter", Price: 12.99, SalePrice: &sale, Stock: 120},
		{SKU: "BRK-0001", Name: "Brake Pads", Price: 45.00, Stock: 40},
	}

	jobRepo := new(importJobRepoMock)
	jobRepo.On("Create", mock.AnythingOfType("*model.ImportJob")).Return(nil)
	done := terminalJob(jobRepo)

	productRepo := new(productRepoMock)
	productRepo.On("FindAll", model.ProductFilter{}).Return(products, nil)

	exportDir := t.TempDir()
	svc := newTestImportService(jobRepo, productRepo, exportDir)
	job, err := svc.StartExport()
	require.NoError(t, err)
	assert.Equal(t, model.ImportJobTypeExport, job.Type)

	finished := waitForJob(t, done)
	assert.Equal(t, model.ImportJobStatusCompleted, finished.Status)
	assert.Equal(t, 2, finished.SucceededRows)

	data, err := os.ReadFile(filepath.Join(exportDir, job.FileName))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "sku,name,description,price,sale_price,stock")
	assert.Contains(t, content, "ENG-0001,Oil Filter,,12.99,9.99,120")
	assert.Contains(t, content, "BRK-0001,Brake Pads,,45.00,,40")
}

func TestParseProductRow(t *testing.T) {
	product, err := parseProductRow([]string{"ENG-0001", "Oil Filter", "Spin-on", "12.99", "9.99", "120"})
	require.NoError(t, err)

	assert.Equal(t, "ENG-0001", product.SKU)
	assert.Equal(t, "Oil Filter", product.Name)
	assert.Equal(t, 12.99, product.Price)
	require.NotNil(t, product.SalePrice)
	assert.Equal(t, 9.99, *product.SalePrice)
	assert.Equal(t, 120, product.Stock)
	assert.True(t, product.IsActive)
}

func TestParseProductRowOptionalColumns(t *testing.T) {
	product, err := parseProductRow([]string{"BRK-0001", "Brake Pads", "", "45.00"})
	require.NoError(t, err)

	assert.Nil(t, product.SalePrice)
	assert.Equal(t, 0, product.Stock)
}

func TestParseProductRowRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"ENG-0001", "Oil Filter"},                               // too few columns
		{"", "Oil Filter", "", "12.99"},                          // missing sku
		{"ENG-0001", "", "", "12.99"},                            // missing name
		{"ENG-0001", "Oil Filter", "", "not-a-price"},            // bad price
		{"ENG-0001", "Oil Filter", "", "12.99", "abc"},           // bad sale price
		{"ENG-0001", "Oil Filter", "", "12.99", "15.00"},         // sale above price
		{"ENG-0001", "Oil Filter", "", "12.99", "9.99", "1.5x"},  // bad stock
	}

	for _, record := range cases {
		_, err := parseProductRow(record)
		assert.Error(t, err, "record %v", record)
	}
}
