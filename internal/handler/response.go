package handler

import (
	"errors"

	"go-parts-store/internal/apperr"
	"go-parts-store/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Every endpoint answers the same envelope: {success, data?, error?, message?}

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}

// respondError classifies err and answers the matching status. Internal
// causes are logged, not leaked into the body.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Persistence(err)
	}

	if appErr.Status() >= 500 {
		logger.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Status(appErr.Status()).JSON(fiber.Map{"success": false, "error": appErr.Msg})
}
