package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmcardenas/taller-inventario/internal/domain"
	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, product_id, warehouse_id, quantity, min_level, created_at, updated_at`

// Create persiste un registro de inventario. El constraint único sobre
// (product_id, warehouse_id) convierte el par duplicado en ErrDuplicate,
// también cuando dos creaciones concurrentes pasan el chequeo previo.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, min_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.MinLevel,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory")
}

// GetByProductAndWarehouse obtiene el registro del par producto+bodega.
func (r *InventoryRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID), "get inventory by pair")
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción; serializa movimientos concurrentes
// sobre la misma fila.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory for update")
}

// Update actualiza cantidad y umbral de reorden.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $2, min_level = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Quantity, inv.MinLevel, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// ListAll lista todo el inventario con paginación.
func (r *InventoryRepo) ListAll(limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByWarehouse lista el inventario de una bodega con paginación.
func (r *InventoryRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE warehouse_id = $3 ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, warehouseID)
}

// ListByProduct lista el inventario de un producto con paginación.
func (r *InventoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $3 ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, productID)
}

// CountAll cuenta todos los registros de inventario.
func (r *InventoryRepo) CountAll() (int, error) {
	return r.count(`SELECT count(*) FROM inventory`)
}

// CountByWarehouse cuenta los registros de una bodega.
func (r *InventoryRepo) CountByWarehouse(warehouseID string) (int, error) {
	return r.count(`SELECT count(*) FROM inventory WHERE warehouse_id = $1`, warehouseID)
}

// CountByProduct cuenta los registros de un producto.
func (r *InventoryRepo) CountByProduct(productID string) (int, error) {
	return r.count(`SELECT count(*) FROM inventory WHERE product_id = $1`, productID)
}

// Delete elimina un registro de inventario por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
		&inv.MinLevel, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

func (r *InventoryRepo) list(query string, limit, offset int, extra ...any) ([]*entity.Inventory, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
			&inv.MinLevel, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) count(query string, args ...any) (int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count inventory: %w", err)
	}
	return total, nil
}
