package repository

import "github.com/dmcardenas/taller-inventario/internal/domain/entity"

// CardexRepository define el puerto de persistencia para el kardex (DIP).
// El historial es append-only: no hay Update ni borrado individual; las
// entradas solo desaparecen en cascada al eliminar su Inventory.
type CardexRepository interface {
	Create(entry *entity.CardexEntry) error
	// ListByInventory devuelve entradas ordenadas por fecha de creación,
	// la más reciente primero.
	ListByInventory(inventoryID string, limit, offset int) ([]*entity.CardexEntry, error)
	CountByInventory(inventoryID string) (int, error)
	DeleteByInventory(inventoryID string) error
}
