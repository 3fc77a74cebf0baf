package repository

import "github.com/dmcardenas/taller-inventario/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Usado dentro de transacciones para garantizar consistencia con el kardex.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Llamar solo
	// dentro de una transacción.
	GetForUpdate(id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	ListAll(limit, offset int) ([]*entity.Inventory, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Inventory, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Inventory, error)
	CountAll() (int, error)
	CountByWarehouse(warehouseID string) (int, error)
	CountByProduct(productID string) (int, error)
	Delete(id string) error
}
