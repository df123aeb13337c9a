package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// ShippingService drives the shipping lifecycle.
type ShippingService struct {
	shipments domain.ShippingRepository
	bus       Publisher
}

// NewShippingService creates a ShippingService.
func NewShippingService(shipments domain.ShippingRepository, bus Publisher) *ShippingService {
	return &ShippingService{shipments: shipments, bus: bus}
}

// CreateShipping opens a pending shipping record for an order.
func (s *ShippingService) CreateShipping(ctx context.Context, orderID uuid.UUID, address domain.ShippingAddress) (domain.Shipping, error) {
	log.Printf("[Shipping] Creating shipment for order=%s", orderID)

	return s.shipments.Save(ctx, domain.NewShipping(orderID, address))
}

// ShipOrder hands the shipment to a carrier and publishes order.shipped.
func (s *ShippingService) ShipOrder(ctx context.Context, shippingID uuid.UUID, trackingNumber, carrier string) (domain.Shipping, error) {
	log.Printf("[Shipping] Shipping shipment=%s tracking=%s carrier=%s", shippingID, trackingNumber, carrier)

	sh, err := s.shipments.FindByID(ctx, shippingID)
	if err != nil {
		return domain.Shipping{}, err
	}
	next, err := sh.Ship(trackingNumber, carrier)
	if err != nil {
		return domain.Shipping{}, err
	}
	saved, err := s.shipments.Save(ctx, next)
	if err != nil {
		return domain.Shipping{}, err
	}

	s.bus.Publish(events.OrderShipped{
		Base:           events.NewBase(),
		OrderID:        saved.OrderID.String(),
		TrackingNumber: trackingNumber,
		Carrier:        carrier,
	})
	return saved, nil
}

// DeliverOrder records carrier delivery and publishes order.delivered.
func (s *ShippingService) DeliverOrder(ctx context.Context, shippingID uuid.UUID) (domain.Shipping, error) {
	log.Printf("[Shipping] Delivering shipment=%s", shippingID)

	sh, err := s.shipments.FindByID(ctx, shippingID)
	if err != nil {
		return domain.Shipping{}, err
	}
	next, err := sh.Deliver()
	if err != nil {
		return domain.Shipping{}, err
	}
	saved, err := s.shipments.Save(ctx, next)
	if err != nil {
		return domain.Shipping{}, err
	}

	s.bus.Publish(events.OrderDelivered{Base: events.NewBase(), OrderID: saved.OrderID.String()})
	return saved, nil
}

// FindByID looks up a shipping record.
func (s *ShippingService) FindByID(ctx context.Context, shippingID uuid.UUID) (domain.Shipping, error) {
	return s.shipments.FindByID(ctx, shippingID)
}

// FindByOrderID looks up the shipping record opened for an order.
func (s *ShippingService) FindByOrderID(ctx context.Context, orderID uuid.UUID) (domain.Shipping, error) {
	return s.shipments.FindByOrderID(ctx, orderID)
}
