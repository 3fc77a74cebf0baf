package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/domain"
)

// writeError mapea errores de dominio a códigos HTTP. Los fallos de
// almacenamiento no se detallan al cliente: 500 opaco.
func writeError(c *fiber.Ctx, err error) error {
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:        "CONFLICT",
			Message:     "ya existe inventario para este producto en esta bodega",
			InventoryID: conflict.ExistingID,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: domain.ErrInvalidInput.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: domain.ErrNotFound.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: domain.ErrDuplicate.Error(),
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: domain.ErrConflict.Error(),
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: domain.ErrInsufficientStock.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno",
		})
	}
}

// parsePage lee page/pageSize de la query con los defaults 1/10 y rechaza
// valores explícitos menores a 1.
func parsePage(c *fiber.Ctx) (dto.PageRequest, error) {
	p := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 10),
	}
	if p.Page < 1 || p.PageSize < 1 {
		return p, domain.ErrInvalidInput
	}
	return p, nil
}
