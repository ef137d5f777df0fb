package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/quickbite/internal/services"
	"github.com/example/quickbite/internal/utils"
)

var kindStatus = map[services.Kind]int{
	services.KindValidation:   fiber.StatusBadRequest,
	services.KindConflict:     fiber.StatusConflict,
	services.KindNotFound:     fiber.StatusNotFound,
	services.KindUnauthorized: fiber.StatusUnauthorized,
	services.KindForbidden:    fiber.StatusForbidden,
	services.KindInternal:     fiber.StatusInternalServerError,
}

// ErrorHandler renders every failure as {"error": message}. Internal causes
// are logged and never sent to the client.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			status := kindStatus[svcErr.Kind]
			if svcErr.Kind == services.KindInternal {
				logger.Error("request failed",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			}
			return utils.RespondError(c, status, svcErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.RespondError(c, fiberErr.Code, fiberErr.Message)
		}

		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.RespondError(c, fiber.StatusInternalServerError, services.MsgServerError)
	}
}
