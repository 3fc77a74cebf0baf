package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/domain"
	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// InventoryUseCase CRUD de registros de inventario. Las mutaciones de
// cantidad con rastro de auditoría van por el núcleo de kardex; aquí solo
// vive la creación, la corrección administrativa y el borrado.
type InventoryUseCase struct {
	repo          repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	txRunner      TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	txRunner TxRunner,
) *InventoryUseCase {
	return &InventoryUseCase{
		repo:          repo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		txRunner:      txRunner,
	}
}

// Create crea un registro de inventario para un par producto+bodega.
// El producto y la bodega deben existir. La unicidad del par se verifica
// antes de insertar (para responder con el ID de la fila existente) y el
// constraint del almacén decide la carrera entre creaciones concurrentes.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByProductAndWarehouse(in.ProductID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{ExistingID: existing.ID}
	}

	now := time.Now()
	inv := &entity.Inventory{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		MinLevel:    in.MinLevel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(inv); err != nil {
		// Otro request creó el par entre el chequeo y el insert: el
		// constraint único lo convierte en conflicto igualmente.
		if errors.Is(err, domain.ErrDuplicate) {
			if existing, lookupErr := uc.repo.GetByProductAndWarehouse(in.ProductID, in.WarehouseID); lookupErr == nil && existing != nil {
				return nil, &domain.ConflictError{ExistingID: existing.ID}
			}
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Update corrección administrativa directa de quantity/minLevel.
//
// Esta vía NO genera entrada de kardex: rompe deliberadamente el invariante
// cantidad == suma de movimientos y existe solo para correcciones puntuales.
// Los movimientos rastreados van por cardex.UseCase.RegisterMovement.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		inv.Quantity = *in.Quantity
	}
	if in.MinLevel != nil {
		inv.MinLevel = in.MinLevel
	}
	inv.UpdatedAt = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Delete elimina un registro de inventario junto con su historial de kardex,
// en una sola transacción. El historial pertenece en exclusiva al registro y
// no se conserva huérfano.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		cardexRepo repository.CardexRepository,
	) error {
		if err := cardexRepo.DeleteByInventory(id); err != nil {
			return err
		}
		return invRepo.Delete(id)
	})
}

// GetByID obtiene un registro por ID. Devuelve nil, nil si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInventoryResponse(inv), nil
}

// GetByProductAndWarehouse obtiene el registro del par producto+bodega.
// Devuelve nil, nil si no existe.
func (uc *InventoryUseCase) GetByProductAndWarehouse(productID, warehouseID string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByProductAndWarehouse(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInventoryResponse(inv), nil
}

// ListAll lista todo el inventario con paginación.
func (uc *InventoryUseCase) ListAll(page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	total, err := uc.repo.CountAll()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListAll(page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return toInventoryListResponse(list, total, page), nil
}

// ListByWarehouse lista el inventario de una bodega con paginación.
func (uc *InventoryUseCase) ListByWarehouse(warehouseID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	total, err := uc.repo.CountByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByWarehouse(warehouseID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return toInventoryListResponse(list, total, page), nil
}

// ListByProduct lista el inventario de un producto con paginación.
func (uc *InventoryUseCase) ListByProduct(productID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	total, err := uc.repo.CountByProduct(productID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByProduct(productID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return toInventoryListResponse(list, total, page), nil
}

func toInventoryListResponse(list []*entity.Inventory, total int, page dto.PageRequest) *dto.InventoryListResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{
		Data: items,
		Meta: dto.NewPageMeta(total, page.Page, page.PageSize),
	}
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		MinLevel:    inv.MinLevel,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}
