package handler

import (
	"go-parts-store/internal/apperr"
	"go-parts-store/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	user, err := h.service.Register(&req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid JSON body"))
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return respondError(c, apperr.Auth("invalid session"))
	}

	user, err := h.service.GetCurrentUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, user)
}
