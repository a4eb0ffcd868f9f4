package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
)

// statusFromError traduce la taxonomía de errores a status HTTP y código.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNegativeStock):
		return fiber.StatusUnprocessableEntity, "NEGATIVE_STOCK"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// replyError responde con dto.ErrorResponse cuando la petición no produce página.
func replyError(c *fiber.Ctx, err error) error {
	status, code := statusFromError(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: dto.MessageFromError(err)})
}

// replyPage responde la vista; con error, el status sale del error y el cuerpo
// conserva la vista previa con su notificación.
func replyPage[T any](c *fiber.Ctx, pv dto.PageView[T], err error, okStatus int) error {
	if err != nil {
		status, _ := statusFromError(err)
		return c.Status(status).JSON(pv)
	}
	return c.Status(okStatus).JSON(pv)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "inicie sesión"})
}

// NotFound respuesta del fallback /no-encontrado y de cualquier ruta sin handler.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la página no existe"})
}
