package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmcardenas/taller-inventario/internal/application/cardex"
	"github.com/dmcardenas/taller-inventario/internal/application/usecase"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// TxRunner satisface los puertos transaccionales de ambas capas de aplicación.
var _ cardex.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un contexto cancelado antes del commit aborta la
// transacción completa: nunca queda una entrada de kardex sin su cambio de
// cantidad ni al revés.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	cardexRepo repository.CardexRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventoryRepository(tx)
	cardexRepo := NewCardexRepository(tx)

	if err := fn(invRepo, cardexRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
