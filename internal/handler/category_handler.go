package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	service service.CatalogService
}

func NewCategoryHandler(s service.CatalogService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid category ID"))
	}

	category, err := h.service.GetCategory(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	category, err := h.service.CreateCategory(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid category ID"))
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	category, err := h.service.UpdateCategory(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid category ID"))
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Category deleted")
}
