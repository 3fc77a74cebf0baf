package entity

import "time"

// Inventory representa la existencia actual de un producto en una bodega.
// A lo sumo existe una fila por par (ProductID, WarehouseID).
//
// Invariante de saldo: Quantity es igual a la cantidad inicial más la suma de
// (Addition - Withdrawal) de todas sus entradas de kardex. Toda mutación de
// Quantity pasa por el núcleo de kardex, salvo la corrección administrativa
// directa (ver InventoryUseCase.Update).
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	MinLevel    *int64 // umbral de reorden; nil si no se definió
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
