package entity

import "time"

// CardexEntry registro inmutable de un movimiento de inventario (kardex).
// Solo uno de Addition/Withdrawal puede ser mayor que cero; ambos en cero se
// permite como nota sin efecto. Las entradas nunca se actualizan ni se
// eliminan de forma individual: el historial es append-only y pertenece en
// exclusiva a su Inventory.
type CardexEntry struct {
	ID          string
	InventoryID string
	Addition    int64
	Withdrawal  int64
	Note        string
	CreatedAt   time.Time
}
