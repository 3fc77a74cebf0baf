package dto

import "time"

// RegisterMovementRequest body para POST /api/cardex.
// Solo uno de addition/withdrawal puede ser mayor que cero.
type RegisterMovementRequest struct {
	InventoryID string `json:"inventory_id" validate:"required,uuid4"`
	Addition    int64  `json:"addition" validate:"min=0"`
	Withdrawal  int64  `json:"withdrawal" validate:"min=0"`
	Note        string `json:"note" validate:"max=500"`
}

// StockChangeRequest body para los atajos de entrada/salida de stock.
type StockChangeRequest struct {
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Note     string `json:"note" validate:"max=500"`
}

// CardexEntryResponse salida de una entrada de kardex.
type CardexEntryResponse struct {
	ID          string    `json:"id"`
	InventoryID string    `json:"inventory_id"`
	Addition    int64     `json:"addition"`
	Withdrawal  int64     `json:"withdrawal"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementResponse resultado de registrar un movimiento: el inventario
// actualizado y la entrada de kardex que lo respalda.
type MovementResponse struct {
	Inventory InventoryResponse   `json:"inventory"`
	Entry     CardexEntryResponse `json:"entry"`
}

// CardexListResponse historial paginado de movimientos.
type CardexListResponse struct {
	Data []CardexEntryResponse `json:"data"`
	Meta PageMeta              `json:"meta"`
}
