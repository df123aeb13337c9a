package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ItemKind distinguishes the two component kinds held in inventory.
type ItemKind string

const (
	ItemKindFrame ItemKind = "FRAME"
	ItemKindLens  ItemKind = "LENS"
)

// Inventory is the stock record for a single item code.
// Quantity never goes negative: Acquire refuses rather than overdrawing.
type Inventory struct {
	ID                uuid.UUID
	Kind              ItemKind
	ItemCode          string
	Description       string
	Quantity          int
	MinimumStockLevel int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewInventory creates a stock record. Initial quantity and minimum stock
// level must not be negative.
func NewInventory(kind ItemKind, itemCode, description string, initialQuantity, minimumStockLevel int) (*Inventory, error) {
	if initialQuantity < 0 {
		return nil, fmt.Errorf("initial quantity cannot be negative: %d", initialQuantity)
	}
	if minimumStockLevel < 0 {
		return nil, fmt.Errorf("minimum stock level cannot be negative: %d", minimumStockLevel)
	}
	now := time.Now()
	return &Inventory{
		ID:                uuid.New(),
		Kind:              kind,
		ItemCode:          itemCode,
		Description:       description,
		Quantity:          initialQuantity,
		MinimumStockLevel: minimumStockLevel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// CheckAvailability reports whether the required quantity is in stock.
func (i *Inventory) CheckAvailability(required int) bool {
	return i.Quantity >= required
}

// Acquire decrements stock by qty. Insufficient stock is not an error: it
// returns false and leaves the quantity unchanged. qty must be positive.
func (i *Inventory) Acquire(qty int) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("quantity to acquire must be positive: %d", qty)
	}
	if i.Quantity < qty {
		return false, nil
	}
	i.Quantity -= qty
	i.UpdatedAt = time.Now()
	return true, nil
}

// Restock increments stock by qty. qty must be positive.
func (i *Inventory) Restock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity to add must be positive: %d", qty)
	}
	i.Quantity += qty
	i.UpdatedAt = time.Now()
	return nil
}

// LowOnStock reports whether the quantity is at or below the minimum.
func (i *Inventory) LowOnStock() bool {
	return i.Quantity <= i.MinimumStockLevel
}
