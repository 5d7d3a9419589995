package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

const msgInternal = "error interno del servidor"

// statusFor traduce un error de dominio a status HTTP y código de error.
// La API no usa 409: duplicados y conflictos responden 400.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		return fiber.StatusForbidden, "ACCOUNT_LOCKED"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con el sobre {"error","code","details"}. Los 500 se registran
// con el error completo y el cliente solo ve un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := statusFor(err)
	body := dto.ErrorResponse{Error: err.Error(), Code: code}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Details = verr.Fields
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		body = dto.ErrorResponse{Error: msgInternal, Code: code}
	case status == fiber.StatusUnauthorized || status == fiber.StatusForbidden:
		log.Warn().Str("method", c.Method()).Str("path", c.Path()).Str("ip", clientIP(c)).Str("code", code).Msg(err.Error())
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, métodos no permitidos
// y cualquier error que escape de un handler.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				code = "BODY_TOO_LARGE"
			}
			if fe.Code >= fiber.StatusInternalServerError {
				return writeError(c, log, err)
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: code})
		}
		return writeError(c, log, err)
	}
}
