package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShippingStatus is the observable status of a shipping record.
type ShippingStatus string

const (
	ShippingStatusPending   ShippingStatus = "PENDING"
	ShippingStatusShipped   ShippingStatus = "SHIPPED"
	ShippingStatusDelivered ShippingStatus = "DELIVERED"
)

// ShippingState is the sealed state variant of a shipping record. Tracking
// number and carrier only exist on the Shipped and Delivered variants, so
// they are unobservable while pending by construction, not by convention.
type ShippingState interface {
	Status() ShippingStatus
	sealed()
}

// Pending is the initial state: created but not yet handed to a carrier.
type Pending struct{}

func (Pending) Status() ShippingStatus { return ShippingStatusPending }
func (Pending) sealed()                {}

// Shipped carries the tracking information assigned at hand-off.
type Shipped struct {
	TrackingNumber string
	Carrier        string
}

func (Shipped) Status() ShippingStatus { return ShippingStatusShipped }
func (Shipped) sealed()                {}

// Delivered is the terminal state; tracking information is retained.
type Delivered struct {
	TrackingNumber string
	Carrier        string
}

func (Delivered) Status() ShippingStatus { return ShippingStatusDelivered }
func (Delivered) sealed()                {}

// ShippingAddress is the destination of a shipment.
type ShippingAddress struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Shipping is the shipping record for one order. Transitions replace the
// whole value rather than mutating in place, so a concurrent reader never
// observes an intermediate state.
type Shipping struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Address   ShippingAddress
	State     ShippingState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewShipping creates a pending shipping record for an order.
func NewShipping(orderID uuid.UUID, address ShippingAddress) Shipping {
	now := time.Now()
	return Shipping{
		ID:        uuid.New(),
		OrderID:   orderID,
		Address:   address,
		State:     Pending{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Status exposes the status of the current state variant.
func (s Shipping) Status() ShippingStatus { return s.State.Status() }

// Ship transitions Pending -> Shipped, returning the new record.
func (s Shipping) Ship(trackingNumber, carrier string) (Shipping, error) {
	if _, ok := s.State.(Pending); !ok {
		return s, fmt.Errorf("%w: shipment can only be shipped from PENDING, is %s", ErrInvalidTransition, s.Status())
	}
	next := s
	next.State = Shipped{TrackingNumber: trackingNumber, Carrier: carrier}
	next.UpdatedAt = time.Now()
	return next, nil
}

// Deliver transitions Shipped -> Delivered, carrying the tracking
// information over, and returns the new record.
func (s Shipping) Deliver() (Shipping, error) {
	shipped, ok := s.State.(Shipped)
	if !ok {
		return s, fmt.Errorf("%w: shipment can only be delivered from SHIPPED, is %s", ErrInvalidTransition, s.Status())
	}
	next := s
	next.State = Delivered{TrackingNumber: shipped.TrackingNumber, Carrier: shipped.Carrier}
	next.UpdatedAt = time.Now()
	return next, nil
}
