package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o repuesto del catálogo del taller.
// SKU es el código de negocio único asignado por el usuario; la existencia
// por bodega se maneja aparte en Inventory.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Category    string
	Brand       string
	Price       decimal.Decimal // precio de venta, siempre positivo
	Unit        string          // unidad de medida (unidad, litro, caja...)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
