package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// TxRunner puerto transaccional para operaciones que tocan inventario y
// kardex a la vez (ej. el borrado en cascada del historial).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		cardexRepo repository.CardexRepository,
	) error) error
}

// validate instancia compartida; los tags viven en los DTOs.
var validate = validator.New()
