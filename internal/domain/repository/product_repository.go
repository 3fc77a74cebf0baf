package repository

import "github.com/dmcardenas/taller-inventario/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List filtra por query (ILIKE sobre sku/name/description) cuando no está vacío.
	List(query string, limit, offset int) ([]*entity.Product, error)
	Count(query string) (int, error)
	Delete(id string) error
}
