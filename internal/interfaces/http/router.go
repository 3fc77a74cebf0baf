package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmcardenas/taller-inventario/internal/application/cardex"
	"github.com/dmcardenas/taller-inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryUseCase
	CardexUC    *cardex.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Patch("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventory
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.CardexUC, deps.ProductUC, deps.WarehouseUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/warehouse/:warehouseId", inventoryHandler.ListByWarehouse)
	inventory.Get("/product/:productId", inventoryHandler.ListByProduct)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)
	inventory.Post("/:id/add", inventoryHandler.AddStock)
	inventory.Post("/:id/remove", inventoryHandler.RemoveStock)

	// Cardex
	cardexGroup := api.Group("/cardex")
	cardexHandler := NewCardexHandler(deps.CardexUC, deps.InventoryUC)
	cardexGroup.Post("/", cardexHandler.RegisterMovement)
	cardexGroup.Get("/:inventoryId", cardexHandler.History)
}
