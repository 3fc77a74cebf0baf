package cardex

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/domain"
	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// UseCase núcleo de kardex: la única autoridad para mutar Inventory.Quantity.
// Cada mutación queda emparejada, dentro de una misma transacción y con
// bloqueo de fila (SELECT FOR UPDATE), con una entrada inmutable de kardex,
// de modo que la cantidad vigente siempre sea la cantidad inicial más la suma
// de los movimientos históricos.
type UseCase struct {
	txRunner   TxRunner
	cardexRepo repository.CardexRepository

	// allowNegativeStock permite que un retiro deje la cantidad por debajo de
	// cero (INVENTORY_ALLOW_NEGATIVE_STOCK). Apagado, el retiro excedente se
	// rechaza con ErrInsufficientStock.
	allowNegativeStock bool
}

// NewUseCase construye el núcleo de kardex.
func NewUseCase(txRunner TxRunner, cardexRepo repository.CardexRepository, allowNegativeStock bool) *UseCase {
	return &UseCase{
		txRunner:           txRunner,
		cardexRepo:         cardexRepo,
		allowNegativeStock: allowNegativeStock,
	}
}

// RegisterMovementInput entrada para registrar un movimiento.
// Addition y Withdrawal deben ser >= 0 y a lo sumo uno mayor que cero;
// ambos en cero registra una nota sin efecto sobre el saldo.
type RegisterMovementInput struct {
	InventoryID string
	Addition    int64
	Withdrawal  int64
	Note        string
}

// RegisterMovement inicia una transacción, bloquea la fila de inventario,
// aplica el delta (addition - withdrawal) y guarda la entrada de kardex.
// Commit o rollback como unidad: ningún lector concurrente observa la
// cantidad nueva sin su entrada ni al revés.
func (uc *UseCase) RegisterMovement(ctx context.Context, input RegisterMovementInput) (*entity.Inventory, *entity.CardexEntry, error) {
	if input.Addition < 0 || input.Withdrawal < 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	// Solo uno de addition/withdrawal puede tener valor.
	if input.Addition > 0 && input.Withdrawal > 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		updated *entity.Inventory
		entry   *entity.CardexEntry
	)
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		cardexRepo repository.CardexRepository,
	) error {
		// Bloquea la fila de inventario (SELECT FOR UPDATE) para serializar
		// movimientos concurrentes sobre el mismo registro.
		inv, err := invRepo.GetForUpdate(input.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}

		newQty := inv.Quantity + input.Addition - input.Withdrawal
		if newQty < 0 && !uc.allowNegativeStock {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		inv.Quantity = newQty
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}

		e := &entity.CardexEntry{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			Addition:    input.Addition,
			Withdrawal:  input.Withdrawal,
			Note:        input.Note,
			CreatedAt:   now,
		}
		if err := cardexRepo.Create(e); err != nil {
			return err
		}

		updated, entry = inv, e
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return updated, entry, nil
}

// AddStock atajo de entrada: registra un movimiento solo-addition.
func (uc *UseCase) AddStock(ctx context.Context, inventoryID string, quantity int64, note string) (*entity.Inventory, *entity.CardexEntry, error) {
	if quantity <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	return uc.RegisterMovement(ctx, RegisterMovementInput{
		InventoryID: inventoryID,
		Addition:    quantity,
		Note:        note,
	})
}

// RemoveFromStock atajo de salida: registra un movimiento solo-withdrawal.
func (uc *UseCase) RemoveFromStock(ctx context.Context, inventoryID string, quantity int64, note string) (*entity.Inventory, *entity.CardexEntry, error) {
	if quantity <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	return uc.RegisterMovement(ctx, RegisterMovementInput{
		InventoryID: inventoryID,
		Withdrawal:  quantity,
		Note:        note,
	})
}

// GetMovementHistory devuelve el historial de movimientos de un inventario,
// el más reciente primero, con metadatos de página. No verifica que el
// inventario exista: un ID desconocido produce una página vacía (la
// verificación de existencia es responsabilidad del caller).
func (uc *UseCase) GetMovementHistory(inventoryID string, page, pageSize int) ([]*entity.CardexEntry, dto.PageMeta, error) {
	if page < 1 || pageSize < 1 {
		return nil, dto.PageMeta{}, domain.ErrInvalidInput
	}
	total, err := uc.cardexRepo.CountByInventory(inventoryID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	entries, err := uc.cardexRepo.ListByInventory(inventoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	return entries, dto.NewPageMeta(total, page, pageSize), nil
}
