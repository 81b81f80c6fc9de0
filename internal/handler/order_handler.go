package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/model"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	order, err := h.service.Checkout(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, order)
}

// ListOrders answers a user's orders when ?userId= is given, all orders
// otherwise (admin listing)
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	if q := c.Query("userId"); q != "" {
		userID, err := uuid.Parse(q)
		if err != nil {
			return respondError(c, apperr.Validation("invalid userId"))
		}
		orders, err := h.service.ListByUser(userID)
		if err != nil {
			return respondError(c, err)
		}
		return respondOK(c, orders)
	}

	orders, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid order ID"))
	}

	order, err := h.service.GetByID(orderID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, order)
}

func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid order ID"))
	}

	var req struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	order, err := h.service.UpdateStatus(orderID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, order)
}

func (h *OrderHandler) BulkDelete(c *fiber.Ctx) error {
	var req service.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	deleted, err := h.service.BulkDelete(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "deletedOrders": deleted})
}
