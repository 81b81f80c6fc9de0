package handler

import (
	"os"
	"path/filepath"

	"go-parts-store/internal/apperr"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ImportHandler struct {
	service   service.ImportService
	uploadDir string
}

func NewImportHandler(s service.ImportService, uploadDir string) *ImportHandler {
	return &ImportHandler{service: s, uploadDir: uploadDir}
}

// StartImport accepts a product CSV and kicks off a background import job
func (h *ImportHandler) StartImport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Validation("file is required"))
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return respondError(c, apperr.Persistence(err))
	}

	storedName := uuid.NewString() + "_" + sanitizeFileName(fileHeader.Filename)
	storedPath := filepath.Join(h.uploadDir, storedName)
	if err := c.SaveFile(fileHeader, storedPath); err != nil {
		return respondError(c, apperr.Persistence(err))
	}

	job, err := h.service.StartImport(storedPath, fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, job)
}

func (h *ImportHandler) StartExport(c *fiber.Ctx) error {
	job, err := h.service.StartExport()
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, job)
}

func (h *ImportHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, jobs)
}

func (h *ImportHandler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid job ID"))
	}

	job, err := h.service.GetJob(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, job)
}
