package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/repository"
	"go-parts-store/internal/ws"
	"go-parts-store/pkg/logger"
	"go-parts-store/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// progressEvery controls how often row counters are flushed to the job row
const progressEvery = 25

type ImportService interface {
	// StartImport records a pending job for the uploaded CSV and processes
	// it on a background goroutine. The returned job is a detached copy of
	// the initial record; progress is visible through GetJob and the ws hub.
	StartImport(filePath, fileName string) (*model.ImportJob, error)
	// StartExport writes the product catalog to a CSV under exportDir on a
	// background goroutine, tracked by an export-type job.
	StartExport() (*model.ImportJob, error)
	ListJobs() ([]model.ImportJob, error)
	GetJob(id uuid.UUID) (*model.ImportJob, error)
}

type importService struct {
	jobRepo     repository.ImportJobRepository
	productRepo repository.ProductRepository
	hub         *ws.Hub
	exportDir   string
}

func NewImportService(
	jobRepo repository.ImportJobRepository,
	productRepo repository.ProductRepository,
	hub *ws.Hub,
	exportDir string,
) ImportService {
	return &importService{
		jobRepo:     jobRepo,
		productRepo: productRepo,
		hub:         hub,
		exportDir:   exportDir,
	}
}

func (s *importService) StartImport(filePath, fileName string) (*model.ImportJob, error) {
	if filePath == "" {
		return nil, apperr.Validation("file is required")
	}

	job := &model.ImportJob{
		Type:     model.ImportJobTypeImport,
		FileName: fileName,
		Status:   model.ImportJobStatusPending,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperr.FromDB(err)
	}

	// The goroutine owns job from here on; callers get a copy of the
	// initial record and follow progress through GetJob and the hub.
	snapshot := *job
	go s.runImport(job, filePath)

	return &snapshot, nil
}

func (s *importService) runImport(job *model.ImportJob, filePath string) {
	now := time.Now()
	job.Status = model.ImportJobStatusRunning
	job.StartedAt = &now
	if err := s.jobRepo.Update(job); err != nil {
		logger.L().Error("failed to mark import job running", zap.String("job", job.ID.String()), zap.Error(err))
		return
	}

	f, err := os.Open(filePath)
	if err != nil {
		s.finishJob(job, fmt.Sprintf("cannot open uploaded file: %v", err))
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			job.ErrorCount++
			job.LastError = err.Error()
			continue
		}

		// Header row
		if job.TotalRows == 0 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "sku") {
			continue
		}

		job.TotalRows++
		job.ProcessedRows++
		metrics.ImportRowsProcessed.Inc()

		product, err := parseProductRow(record)
		if err != nil {
			job.ErrorCount++
			job.LastError = err.Error()
		} else if err := s.productRepo.UpsertBySKU(product); err != nil {
			job.ErrorCount++
			job.LastError = err.Error()
		} else {
			job.SucceededRows++
		}

		if job.ProcessedRows%progressEvery == 0 {
			s.flushProgress(job)
		}
	}

	s.finishJob(job, "")
}

// parseProductRow maps one CSV record to a product:
// sku,name,description,price,sale_price,stock
func parseProductRow(record []string) (*model.Product, error) {
	if len(record) < 4 {
		return nil, fmt.Errorf("expected at least 4 columns, got %d", len(record))
	}

	sku := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	if sku == "" || name == "" {
		return nil, fmt.Errorf("sku and name are required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", record[3])
	}

	product := &model.Product{
		SKU:         sku,
		Name:        name,
		Description: strings.TrimSpace(record[2]),
		Price:       price,
		IsActive:    true,
	}

	if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
		salePrice, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sale price %q", record[4])
		}
		if salePrice > price {
			return nil, fmt.Errorf("sale price %.2f exceeds price %.2f", salePrice, price)
		}
		product.SalePrice = &salePrice
	}

	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		stock, err := strconv.Atoi(strings.TrimSpace(record[5]))
		if err != nil {
			return nil, fmt.Errorf("invalid stock %q", record[5])
		}
		product.Stock = stock
	}

	return product, nil
}

func (s *importService) StartExport() (*model.ImportJob, error) {
	fileName := fmt.Sprintf("products-%s.csv", time.Now().Format("20060102-150405"))

	job := &model.ImportJob{
		Type:     model.ImportJobTypeExport,
		FileName: fileName,
		Status:   model.ImportJobStatusPending,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperr.FromDB(err)
	}

	snapshot := *job
	go s.runExport(job)

	return &snapshot, nil
}

func (s *importService) runExport(job *model.ImportJob) {
	now := time.Now()
	job.Status = model.ImportJobStatusRunning
	job.StartedAt = &now
	if err := s.jobRepo.Update(job); err != nil {
		logger.L().Error("failed to mark export job running", zap.String("job", job.ID.String()), zap.Error(err))
		return
	}

	products, err := s.productRepo.FindAll(model.ProductFilter{})
	if err != nil {
		s.finishJob(job, err.Error())
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		s.finishJob(job, err.Error())
		return
	}

	f, err := os.Create(filepath.Join(s.exportDir, job.FileName))
	if err != nil {
		s.finishJob(job, err.Error())
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"sku", "name", "description", "price", "sale_price", "stock"})
	for _, p := range products {
		salePrice := ""
		if p.SalePrice != nil {
			salePrice = strconv.FormatFloat(*p.SalePrice, 'f', 2, 64)
		}
		if err := w.Write([]string{
			p.SKU,
			p.Name,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			salePrice,
			strconv.Itoa(p.Stock),
		}); err != nil {
			job.ErrorCount++
			job.LastError = err.Error()
			continue
		}
		job.TotalRows++
		job.ProcessedRows++
		job.SucceededRows++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.finishJob(job, err.Error())
		return
	}

	s.finishJob(job, "")
}

func (s *importService) flushProgress(job *model.ImportJob) {
	if err := s.jobRepo.Update(job); err != nil {
		logger.L().Warn("failed to flush import progress", zap.String("job", job.ID.String()), zap.Error(err))
	}
	s.hub.BroadcastEvent(ws.Event{
		Type: "import_progress",
		Data: map[string]interface{}{
			"jobId":         job.ID,
			"status":        job.Status,
			"processedRows": job.ProcessedRows,
			"succeededRows": job.SucceededRows,
			"errorCount":    job.ErrorCount,
		},
	})
}

// finishJob records the terminal state. A non-empty fatal message means the
// run itself failed; row-level errors alone still complete the job.
func (s *importService) finishJob(job *model.ImportJob, fatal string) {
	now := time.Now()
	job.FinishedAt = &now
	if fatal != "" {
		job.Status = model.ImportJobStatusFailed
		job.LastError = fatal
		job.ErrorCount++
	} else {
		job.Status = model.ImportJobStatusCompleted
	}

	if err := s.jobRepo.Update(job); err != nil {
		logger.L().Error("failed to finalize job", zap.String("job", job.ID.String()), zap.Error(err))
	}

	metrics.ImportJobsTotal.WithLabelValues(string(job.Type), string(job.Status)).Inc()
	s.hub.BroadcastEvent(ws.Event{
		Type: "import_finished",
		Data: map[string]interface{}{
			"jobId":         job.ID,
			"status":        job.Status,
			"processedRows": job.ProcessedRows,
			"succeededRows": job.SucceededRows,
			"errorCount":    job.ErrorCount,
			"lastError":     job.LastError,
		},
	})
}

func (s *importService) ListJobs() ([]model.ImportJob, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return jobs, nil
}

func (s *importService) GetJob(id uuid.UUID) (*model.ImportJob, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return job, nil
}
