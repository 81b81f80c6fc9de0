package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid user ID"))
	}

	user, err := h.service.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid user ID"))
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

func (h *UserHandler) ApproveUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid user ID"))
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil || req.Approved == nil {
		return respondError(c, apperr.Validation("approved is required"))
	}

	user, err := h.service.SetApproval(id, *req.Approved)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Validation("invalid user ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "User deleted")
}
