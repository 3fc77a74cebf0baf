package usecase_test

import (
	"context"
	"strings"
	"sync"

	"github.com/dmcardenas/taller-inventario/internal/domain"
	"github.com/dmcardenas/taller-inventario/internal/domain/entity"
	"github.com/dmcardenas/taller-inventario/internal/domain/repository"
)

// Repos fake en memoria, protegidos por mutex. Mantienen orden de inserción
// para que los listados sean deterministas.

type memProductRepo struct {
	mu    sync.Mutex
	items []entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.SKU == sku {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) matches(p entity.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func (r *memProductRepo) List(query string, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []entity.Product
	for _, it := range r.items {
		if r.matches(it, query) {
			filtered = append(filtered, it)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]*entity.Product, 0, end-offset)
	for i := offset; i < end; i++ {
		cp := filtered[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Count(query string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if r.matches(it, query) {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memWarehouseRepo struct {
	mu    sync.Mutex
	items []entity.Warehouse
}

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *w)
	return nil
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == w.ID {
			r.items[i] = *w
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	out := make([]*entity.Warehouse, 0, end-offset)
	for i := offset; i < end; i++ {
		cp := r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memWarehouseRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

func (r *memWarehouseRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memInventoryRepo struct {
	mu    sync.Mutex
	items []entity.Inventory
}

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ProductID == inv.ProductID && it.WarehouseID == inv.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	r.items = append(r.items, *inv)
	return nil
}

func (r *memInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	return r.GetByID(id)
}

func (r *memInventoryRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ProductID == productID && it.WarehouseID == warehouseID {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) Update(inv *entity.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == inv.ID {
			r.items[i] = *inv
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memInventoryRepo) ListAll(limit, offset int) ([]*entity.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slice(r.items, limit, offset), nil
}

func (r *memInventoryRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []entity.Inventory
	for _, it := range r.items {
		if it.WarehouseID == warehouseID {
			filtered = append(filtered, it)
		}
	}
	return r.slice(filtered, limit, offset), nil
}

func (r *memInventoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []entity.Inventory
	for _, it := range r.items {
		if it.ProductID == productID {
			filtered = append(filtered, it)
		}
	}
	return r.slice(filtered, limit, offset), nil
}

func (r *memInventoryRepo) slice(items []entity.Inventory, limit, offset int) []*entity.Inventory {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]*entity.Inventory, 0, end-offset)
	for i := offset; i < end; i++ {
		cp := items[i]
		out = append(out, &cp)
	}
	return out
}

func (r *memInventoryRepo) CountAll() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

func (r *memInventoryRepo) CountByWarehouse(warehouseID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func (r *memInventoryRepo) CountByProduct(productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *memInventoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memCardexRepo struct {
	mu    sync.Mutex
	items []entity.CardexEntry
}

func (r *memCardexRepo) Create(e *entity.CardexEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *e)
	return nil
}

func (r *memCardexRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.CardexEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CardexEntry
	for _, it := range r.items {
		if it.InventoryID == inventoryID {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCardexRepo) CountByInventory(inventoryID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.InventoryID == inventoryID {
			n++
		}
	}
	return n, nil
}

func (r *memCardexRepo) DeleteByInventory(inventoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if it.InventoryID != inventoryID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

// memTxRunner pasa los repos tal cual; suficiente para probar la cascada de
// borrado (las garantías transaccionales reales las cubre el TxRunner de
// postgres).
type memTxRunner struct {
	inv    *memInventoryRepo
	cardex *memCardexRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	cardexRepo repository.CardexRepository,
) error) error {
	return fn(tr.inv, tr.cardex)
}
