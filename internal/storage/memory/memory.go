// Package memory provides map-backed repository implementations. This is
// the default storage driver for single-process deployments and the
// stand-in used throughout the tests. Stores hand out copies, so callers
// never share aggregate instances through the repository.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// OrderStore is an in-memory domain.OrderRepository.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[uuid.UUID]domain.Order)}
}

func (s *OrderStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return &o, nil
}

func (s *OrderStore) Save(_ context.Context, o *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *o
	stored.Items = append([]domain.OrderItem(nil), o.Items...)
	s.orders[o.ID] = stored
	return o, nil
}

// InventoryStore is an in-memory domain.InventoryRepository.
type InventoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.Inventory
}

// NewInventoryStore creates an empty inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{items: make(map[uuid.UUID]domain.Inventory)}
}

func (s *InventoryStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

func (s *InventoryStore) FindByItemCode(_ context.Context, itemCode string) (*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.items {
		if inv.ItemCode == itemCode {
			inv := inv
			return &inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *InventoryStore) FindByKind(_ context.Context, kind domain.ItemKind) ([]*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Inventory
	for _, inv := range s.items {
		if inv.Kind == kind {
			inv := inv
			out = append(out, &inv)
		}
	}
	return out, nil
}

func (s *InventoryStore) FindLowStock(_ context.Context) ([]*domain.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Inventory
	for _, inv := range s.items {
		if inv.LowOnStock() {
			inv := inv
			out = append(out, &inv)
		}
	}
	return out, nil
}

func (s *InventoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *InventoryStore) Save(_ context.Context, inv *domain.Inventory) (*domain.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[inv.ID] = *inv
	return inv, nil
}

// SupplierOrderStore is an in-memory domain.SupplierOrderRepository.
type SupplierOrderStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.SupplierOrder
}

// NewSupplierOrderStore creates an empty supplier order store.
func NewSupplierOrderStore() *SupplierOrderStore {
	return &SupplierOrderStore{orders: make(map[uuid.UUID]domain.SupplierOrder)}
}

func (s *SupplierOrderStore) FindByID(_ context.Context, id uuid.UUID) (*domain.SupplierOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	so, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &so, nil
}

func (s *SupplierOrderStore) Save(_ context.Context, so *domain.SupplierOrder) (*domain.SupplierOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[so.ID] = *so
	return so, nil
}

// AssemblyStore is an in-memory domain.AssemblyRepository.
type AssemblyStore struct {
	mu         sync.RWMutex
	assemblies map[uuid.UUID]domain.Assembly
}

// NewAssemblyStore creates an empty assembly store.
func NewAssemblyStore() *AssemblyStore {
	return &AssemblyStore{assemblies: make(map[uuid.UUID]domain.Assembly)}
}

func (s *AssemblyStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Assembly, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assemblies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Components = append([]domain.AssemblyComponent(nil), a.Components...)
	return &a, nil
}

func (s *AssemblyStore) FindByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Assembly, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assemblies {
		if a.OrderID == orderID {
			a := a
			a.Components = append([]domain.AssemblyComponent(nil), a.Components...)
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *AssemblyStore) Save(_ context.Context, a *domain.Assembly) (*domain.Assembly, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *a
	stored.Components = append([]domain.AssemblyComponent(nil), a.Components...)
	s.assemblies[a.ID] = stored
	return a, nil
}

// ShippingStore is an in-memory domain.ShippingRepository.
type ShippingStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.Shipping
}

// NewShippingStore creates an empty shipping store.
func NewShippingStore() *ShippingStore {
	return &ShippingStore{records: make(map[uuid.UUID]domain.Shipping)}
}

func (s *ShippingStore) FindByID(_ context.Context, id uuid.UUID) (domain.Shipping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return domain.Shipping{}, domain.ErrNotFound
	}
	return rec, nil
}

func (s *ShippingStore) FindByOrderID(_ context.Context, orderID uuid.UUID) (domain.Shipping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.OrderID == orderID {
			return rec, nil
		}
	}
	return domain.Shipping{}, domain.ErrNotFound
}

func (s *ShippingStore) Save(_ context.Context, rec domain.Shipping) (domain.Shipping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return rec, nil
}
