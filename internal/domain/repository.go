package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no aggregate matches.
var ErrNotFound = errors.New("not found")

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	Save(ctx context.Context, o *Order) (*Order, error)
}

// InventoryRepository persists Inventory aggregates.
type InventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Inventory, error)
	FindByItemCode(ctx context.Context, itemCode string) (*Inventory, error)
	FindByKind(ctx context.Context, kind ItemKind) ([]*Inventory, error)
	FindLowStock(ctx context.Context) ([]*Inventory, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, inv *Inventory) (*Inventory, error)
}

// SupplierOrderRepository persists SupplierOrder aggregates.
type SupplierOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierOrder, error)
	Save(ctx context.Context, so *SupplierOrder) (*SupplierOrder, error)
}

// AssemblyRepository persists Assembly aggregates.
type AssemblyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Assembly, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Assembly, error)
	Save(ctx context.Context, a *Assembly) (*Assembly, error)
}

// ShippingRepository persists Shipping records. Shipping is a value type;
// Save replaces the stored record wholesale.
type ShippingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Shipping, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (Shipping, error)
	Save(ctx context.Context, s Shipping) (Shipping, error)
}
