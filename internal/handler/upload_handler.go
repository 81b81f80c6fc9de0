package handler

import (
	"os"
	"path/filepath"
	"strings"

	"go-parts-store/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// sanitizeFileName keeps only the base name and replaces characters that
// don't belong in a URL path segment
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(" ", "-", "\\", "-", "..", "-")
	return replacer.Replace(name)
}

// Upload stores a multipart file under the public upload directory and
// answers its URL path. Identical content uploaded twice gets two files.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperr.Validation("file is required"))
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return respondError(c, apperr.Persistence(err))
	}

	storedName := uuid.NewString() + "_" + sanitizeFileName(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(h.uploadDir, storedName)); err != nil {
		return respondError(c, apperr.Persistence(err))
	}

	return respondCreated(c, fiber.Map{
		"fileName": storedName,
		"path":     "/uploads/" + storedName,
	})
}
