package cardex

import (
	"context"

	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de cantidad y
// la entrada de kardex se confirmen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		cardexRepo repository.CardexRepository,
	) error) error
}
