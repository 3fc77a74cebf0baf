package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

var _ repository.CardexRepository = (*CardexRepo)(nil)

// CardexRepo implementación del puerto CardexRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: sin UPDATE.
type CardexRepo struct {
	q Querier
}

// NewCardexRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCardexRepository(q Querier) *CardexRepo {
	return &CardexRepo{q: q}
}

// Create persiste una entrada de kardex.
func (r *CardexRepo) Create(entry *entity.CardexEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	note := (*string)(nil)
	if entry.Note != "" {
		note = &entry.Note
	}
	query := `
		INSERT INTO cardex (id, inventory_id, addition, withdrawal, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.InventoryID, entry.Addition, entry.Withdrawal,
		note, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cardex entry: %w", err)
	}
	return nil
}

// ListByInventory lista las entradas de un inventario, la más reciente primero.
func (r *CardexRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.CardexEntry, error) {
	query := `
		SELECT id, inventory_id, addition, withdrawal, note, created_at
		FROM cardex WHERE inventory_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cardex: %w", err)
	}
	defer rows.Close()
	var list []*entity.CardexEntry
	for rows.Next() {
		var e entity.CardexEntry
		var note *string
		if err := rows.Scan(&e.ID, &e.InventoryID, &e.Addition, &e.Withdrawal,
			&note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cardex entry: %w", err)
		}
		if note != nil {
			e.Note = *note
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByInventory cuenta las entradas de un inventario.
func (r *CardexRepo) CountByInventory(inventoryID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM cardex WHERE inventory_id = $1`, inventoryID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count cardex: %w", err)
	}
	return total, nil
}

// DeleteByInventory elimina el historial completo de un inventario. Solo lo
// usa el borrado en cascada del registro de inventario, dentro de su misma
// transacción.
func (r *CardexRepo) DeleteByInventory(inventoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cardex WHERE inventory_id = $1`, inventoryID)
	if err != nil {
		return fmt.Errorf("delete cardex by inventory: %w", err)
	}
	return nil
}
