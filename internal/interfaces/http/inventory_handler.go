package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmcardenas/taller-inventario/internal/application/cardex"
	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para registros de inventario.
// Los atajos add/remove delegan en el núcleo de kardex; el resto es CRUD.
type InventoryHandler struct {
	uc          *usecase.InventoryUseCase
	cardexUC    *cardex.UseCase
	productUC   *usecase.ProductUseCase
	warehouseUC *usecase.WarehouseUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	uc *usecase.InventoryUseCase,
	cardexUC *cardex.UseCase,
	productUC *usecase.ProductUseCase,
	warehouseUC *usecase.WarehouseUseCase,
) *InventoryHandler {
	return &InventoryHandler{uc: uc, cardexUC: cardexUC, productUC: productUC, warehouseUC: warehouseUC}
}

// Create godoc
// @Summary      Crear registro de inventario (producto+bodega)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Datos del registro"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Incluye inventory_id de la fila existente"
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corrección administrativa de quantity/minLevel
// @Description  Edición directa sin entrada de kardex. Para movimientos con rastro de auditoría usar POST /api/cardex.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Description  Elimina también su historial de kardex, en la misma transacción.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Param        page      query  int  false  "Página (1-based)"  default(1)
// @Param        pageSize  query  int  false  "Tamaño de página"  default(10)
// @Success      200       {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListAll(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Listar inventario de una bodega
// @Tags         inventory
// @Produce      json
// @Param        warehouseId  path   string  true   "ID de la bodega"
// @Param        page         query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize     query  int     false  "Tamaño de página"  default(10)
// @Success      200          {object}  dto.InventoryListResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/inventory/warehouse/{warehouseId} [get]
func (h *InventoryHandler) ListByWarehouse(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	warehouseID := c.Params("warehouseId")
	warehouse, err := h.warehouseUC.GetByID(warehouseID)
	if err != nil {
		return writeError(c, err)
	}
	if warehouse == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
	}
	out, err := h.uc.ListByWarehouse(warehouseID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar inventario de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        page       query  int     false  "Página (1-based)"  default(1)
// @Param        pageSize   query  int     false  "Tamaño de página"  default(10)
// @Success      200        {object}  dto.InventoryListResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/inventory/product/{productId} [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	productID := c.Params("productId")
	product, err := h.productUC.GetByID(productID)
	if err != nil {
		return writeError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	out, err := h.uc.ListByProduct(productID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddStock godoc
// @Summary      Entrada de stock (atajo solo-addition)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.StockChangeRequest  true  "Cantidad y nota"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/add [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, entry, err := h.cardexUC.AddStock(c.UserContext(), c.Params("id"), in.Quantity, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementResponse(inv, entry))
}

// RemoveStock godoc
// @Summary      Salida de stock (atajo solo-withdrawal)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.StockChangeRequest  true  "Cantidad y nota"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/inventory/{id}/remove [post]
func (h *InventoryHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, entry, err := h.cardexUC.RemoveFromStock(c.UserContext(), c.Params("id"), in.Quantity, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementResponse(inv, entry))
}
