package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/dmcardenas/taller-inventario/internal/application/cardex"
	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/application/usecase"
	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
)

var validate = validator.New()

// CardexHandler maneja las peticiones HTTP del libro de kardex: registrar
// movimientos y consultar el historial de un inventario.
type CardexHandler struct {
	uc          *cardex.UseCase
	inventoryUC *usecase.InventoryUseCase
}

// NewCardexHandler construye el handler.
func NewCardexHandler(uc *cardex.UseCase, inventoryUC *usecase.InventoryUseCase) *CardexHandler {
	return &CardexHandler{uc: uc, inventoryUC: inventoryUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de kardex
// @Description  Aplica addition/withdrawal a la cantidad del inventario y guarda la entrada de kardex en la misma transacción. Solo uno de los dos puede ser mayor que cero.
// @Tags         cardex
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/cardex [post]
func (h *CardexHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	inv, entry, err := h.uc.RegisterMovement(c.UserContext(), cardex.RegisterMovementInput{
		InventoryID: in.InventoryID,
		Addition:    in.Addition,
		Withdrawal:  in.Withdrawal,
		Note:        in.Note,
	})
	if err != nil {
		return writeError(c, err)
	}

	log.Info().
		Str("inventory_id", inv.ID).
		Int64("addition", entry.Addition).
		Int64("withdrawal", entry.Withdrawal).
		Int64("quantity", inv.Quantity).
		Msg("movimiento de kardex registrado")

	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(inv, entry))
}

// History godoc
// @Summary      Historial de movimientos de un inventario
// @Description  Entradas de kardex del inventario, la más reciente primero.
// @Tags         cardex
// @Produce      json
// @Param        inventoryId  path   string  true   "ID del registro de inventario"
// @Param        page         query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize     query  int     false  "Tamaño de página"  default(10)
// @Success      200          {object}  dto.CardexListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/cardex/{inventoryId} [get]
func (h *CardexHandler) History(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}

	inventoryID := c.Params("inventoryId")
	inv, err := h.inventoryUC.GetByID(inventoryID)
	if err != nil {
		return writeError(c, err)
	}
	if inv == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}

	entries, meta, err := h.uc.GetMovementHistory(inventoryID, page.Page, page.PageSize)
	if err != nil {
		return writeError(c, err)
	}

	out := dto.CardexListResponse{Data: make([]dto.CardexEntryResponse, 0, len(entries)), Meta: meta}
	for _, e := range entries {
		out.Data = append(out.Data, toCardexEntryResponse(e))
	}
	return c.JSON(out)
}

func toCardexEntryResponse(e *entity.CardexEntry) dto.CardexEntryResponse {
	return dto.CardexEntryResponse{
		ID:          e.ID,
		InventoryID: e.InventoryID,
		Addition:    e.Addition,
		Withdrawal:  e.Withdrawal,
		Note:        e.Note,
		CreatedAt:   e.CreatedAt,
	}
}

func toMovementResponse(inv *entity.Inventory, entry *entity.CardexEntry) dto.MovementResponse {
	return dto.MovementResponse{
		Inventory: dto.InventoryResponse{
			ID:          inv.ID,
			ProductID:   inv.ProductID,
			WarehouseID: inv.WarehouseID,
			Quantity:    inv.Quantity,
			MinLevel:    inv.MinLevel,
			CreatedAt:   inv.CreatedAt,
			UpdatedAt:   inv.UpdatedAt,
		},
		Entry: toCardexEntryResponse(entry),
	}
}
