package serverutils

import (
	"errors"

	"lab-notebook-be/internal/pkg/apperror"
	"lab-notebook-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler turns handler errors into {"detail": ...} responses. Internal
// errors are logged and answered with a generic message.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status, detail := resolve(err)

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}

		return ctx.Status(status).JSON(ErrorResponse{Detail: detail})
	}
}

func resolve(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation, apperror.KindUnsupportedMedia:
			return fiber.StatusBadRequest, appErr.Message
		case apperror.KindNotFound:
			return fiber.StatusNotFound, appErr.Message
		}
		return fiber.StatusInternalServerError, "internal server error"
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, "internal server error"
}
