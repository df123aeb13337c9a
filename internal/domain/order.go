// Package domain holds the aggregates of the fulfillment process: Order,
// Inventory, SupplierOrder, Assembly and Shipping. Each aggregate owns its
// state machine; transitions validate the current status and return
// ErrInvalidTransition when the precondition fails, leaving the aggregate
// unchanged. Aggregates reference each other by identity only.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition signals an illegal state transition on any aggregate.
var ErrInvalidTransition = errors.New("invalid state transition")

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusAssembled OrderStatus = "ASSEMBLED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// OrderItem is one line item of an order.
type OrderItem struct {
	ProductID string
	FrameCode string
	LensCode  string
	Quantity  int
	Price     float64
}

// Order is the order aggregate root.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Status     OrderStatus
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PlaceOrder creates a new order in PLACED status.
func PlaceOrder(customerID uuid.UUID, items []OrderItem) *Order {
	now := time.Now()
	return &Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     OrderStatusPlaced,
		Items:      append([]OrderItem(nil), items...),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Confirm moves the order from PLACED to CONFIRMED.
func (o *Order) Confirm() error {
	if o.Status != OrderStatusPlaced {
		return fmt.Errorf("%w: order can only be confirmed from PLACED, is %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusConfirmed
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel is legal from any status except the terminal ones.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled {
		return fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// MarkAssembled moves the order from CONFIRMED to ASSEMBLED.
func (o *Order) MarkAssembled() error {
	if o.Status != OrderStatusConfirmed {
		return fmt.Errorf("%w: order can only be assembled from CONFIRMED, is %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusAssembled
	o.UpdatedAt = time.Now()
	return nil
}

// MarkShipped moves the order from ASSEMBLED to SHIPPED.
func (o *Order) MarkShipped() error {
	if o.Status != OrderStatusAssembled {
		return fmt.Errorf("%w: order can only be shipped from ASSEMBLED, is %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusShipped
	o.UpdatedAt = time.Now()
	return nil
}

// MarkDelivered moves the order from SHIPPED to DELIVERED.
func (o *Order) MarkDelivered() error {
	if o.Status != OrderStatusShipped {
		return fmt.Errorf("%w: order can only be delivered from SHIPPED, is %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusDelivered
	o.UpdatedAt = time.Now()
	return nil
}

// Complete moves the order from DELIVERED to COMPLETED.
func (o *Order) Complete() error {
	if o.Status != OrderStatusDelivered {
		return fmt.Errorf("%w: order can only be completed from DELIVERED, is %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderStatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}
