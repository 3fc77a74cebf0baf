package dto

import "time"

// CreateInventoryRequest entrada para crear un registro de inventario.
type CreateInventoryRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	MinLevel    *int64 `json:"min_level" validate:"omitempty,min=0"`
}

// UpdateInventoryRequest corrección administrativa directa de cantidad o
// umbral. No genera entrada de kardex (ver InventoryUseCase.Update).
type UpdateInventoryRequest struct {
	Quantity *int64 `json:"quantity" validate:"omitempty,min=0"`
	MinLevel *int64 `json:"min_level" validate:"omitempty,min=0"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	MinLevel    *int64    `json:"min_level,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryListResponse lista paginada de registros de inventario.
type InventoryListResponse struct {
	Data []InventoryResponse `json:"data"`
	Meta PageMeta            `json:"meta"`
}
