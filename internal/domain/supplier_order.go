package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SupplierOrderStatus is the lifecycle status of a supplier order.
type SupplierOrderStatus string

const (
	SupplierOrderStatusOrdered   SupplierOrderStatus = "ORDERED"
	SupplierOrderStatusReceived  SupplierOrderStatus = "RECEIVED"
	SupplierOrderStatusCancelled SupplierOrderStatus = "CANCELLED"
)

// SupplierOrder records a replenishment order placed with a supplier.
// Receipt is an external fact; it arrives through the supplier delivery
// channel, never through the core event bus.
type SupplierOrder struct {
	ID         uuid.UUID
	Kind       ItemKind
	ItemCode   string
	Quantity   int
	SupplierID string
	Status     SupplierOrderStatus
	OrderedAt  time.Time
}

// NewSupplierOrder creates a supplier order in ORDERED status.
func NewSupplierOrder(kind ItemKind, itemCode string, quantity int, supplierID string) *SupplierOrder {
	return &SupplierOrder{
		ID:         uuid.New(),
		Kind:       kind,
		ItemCode:   itemCode,
		Quantity:   quantity,
		SupplierID: supplierID,
		Status:     SupplierOrderStatusOrdered,
		OrderedAt:  time.Now(),
	}
}

// MarkReceived records delivery of the supplier order.
func (s *SupplierOrder) MarkReceived() error {
	if s.Status != SupplierOrderStatusOrdered {
		return fmt.Errorf("%w: supplier order can only be received from ORDERED, is %s", ErrInvalidTransition, s.Status)
	}
	s.Status = SupplierOrderStatusReceived
	return nil
}

// Cancel cancels a supplier order that has not been received yet.
func (s *SupplierOrder) Cancel() error {
	if s.Status != SupplierOrderStatusOrdered {
		return fmt.Errorf("%w: supplier order can only be cancelled from ORDERED, is %s", ErrInvalidTransition, s.Status)
	}
	s.Status = SupplierOrderStatusCancelled
	return nil
}
