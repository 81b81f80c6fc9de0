package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) ListItems(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return respondError(c, apperr.Validation("userId is required"))
	}

	items, err := h.service.ListItems(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, items)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req service.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	item, err := h.service.AddItem(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, item)
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid cart item ID"))
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	item, err := h.service.UpdateQuantity(itemID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, item)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid cart item ID"))
	}

	if err := h.service.RemoveItem(itemID); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Cart item removed")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return respondError(c, apperr.Validation("userId is required"))
	}

	cleared, err := h.service.Clear(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "clearedItems": cleared})
}
