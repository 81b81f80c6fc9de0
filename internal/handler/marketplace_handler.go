package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MarketplaceHandler struct {
	service service.MarketplaceService
}

func NewMarketplaceHandler(s service.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{service: s}
}

func (h *MarketplaceHandler) List(c *fiber.Ctx) error {
	marketplaces, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, marketplaces)
}

func (h *MarketplaceHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid marketplace ID"))
	}

	marketplace, err := h.service.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, marketplace)
}

func (h *MarketplaceHandler) Create(c *fiber.Ctx) error {
	var req model.Marketplace
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	marketplace, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, marketplace)
}

func (h *MarketplaceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid marketplace ID"))
	}

	var req service.UpdateMarketplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	marketplace, err := h.service.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, marketplace)
}

func (h *MarketplaceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid marketplace ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Marketplace deleted")
}
