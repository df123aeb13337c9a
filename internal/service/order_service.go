package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// OrderService drives the order lifecycle.
type OrderService struct {
	orders domain.OrderRepository
	bus    Publisher
}

// NewOrderService creates an OrderService.
func NewOrderService(orders domain.OrderRepository, bus Publisher) *OrderService {
	return &OrderService{orders: orders, bus: bus}
}

// PlaceOrder creates a new order and publishes order.placed.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, items []domain.OrderItem) (*domain.Order, error) {
	log.Printf("[Order] Placing order for customer=%s items=%d", customerID, len(items))

	order := domain.PlaceOrder(customerID, items)
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.OrderPlaced{
		Base:       events.NewBase(),
		OrderID:    saved.ID.String(),
		CustomerID: saved.CustomerID.String(),
		Items:      eventItems(saved.Items),
	})
	return saved, nil
}

// ConfirmOrder confirms a placed order and publishes order.confirmed.
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	log.Printf("[Order] Confirming order=%s", orderID)

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.OrderConfirmed{Base: events.NewBase(), OrderID: saved.ID.String()})
	return saved, nil
}

// CancelOrder cancels a non-terminal order and publishes order.canceled.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, error) {
	log.Printf("[Order] Canceling order=%s reason=%q", orderID, reason)

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.OrderCanceled{Base: events.NewBase(), OrderID: saved.ID.String(), Reason: reason})
	return saved, nil
}

// CompleteOrder completes a delivered order and publishes order.completed.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	log.Printf("[Order] Completing order=%s", orderID)

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Complete(); err != nil {
		return nil, err
	}
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.OrderCompleted{Base: events.NewBase(), OrderID: saved.ID.String()})
	return saved, nil
}

// MarkOrderAssembled advances a confirmed order to ASSEMBLED.
func (s *OrderService) MarkOrderAssembled(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.MarkAssembled(); err != nil {
		return nil, err
	}
	return s.orders.Save(ctx, order)
}

// MarkOrderShipped advances an assembled order to SHIPPED.
func (s *OrderService) MarkOrderShipped(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.MarkShipped(); err != nil {
		return nil, err
	}
	return s.orders.Save(ctx, order)
}

// MarkOrderDelivered advances a shipped order to DELIVERED.
func (s *OrderService) MarkOrderDelivered(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.MarkDelivered(); err != nil {
		return nil, err
	}
	return s.orders.Save(ctx, order)
}

// FindByID looks up an order.
func (s *OrderService) FindByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

func eventItems(items []domain.OrderItem) []events.OrderItem {
	out := make([]events.OrderItem, len(items))
	for i, it := range items {
		out[i] = events.OrderItem{
			ProductID: it.ProductID,
			FrameCode: it.FrameCode,
			LensCode:  it.LensCode,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return out
}
