package choreography

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/bus"
	"github.com/contrasam/eyeflow/internal/notify"
	"github.com/contrasam/eyeflow/pkg/events"
)

// ShippingHandler reacts to shipment events: it notifies the customer,
// maintains tracking, and arms the delayed auto-completion timer once an
// order is delivered. Steps run sequentially and a failed step never rolls
// back an earlier one.
type ShippingHandler struct {
	notifier  notify.Notifier
	scheduler *CompletionScheduler
}

// NewShippingHandler creates a ShippingHandler.
func NewShippingHandler(notifier notify.Notifier, scheduler *CompletionScheduler) *ShippingHandler {
	return &ShippingHandler{notifier: notifier, scheduler: scheduler}
}

// Register subscribes the handler to order events; it acts only on the
// shipped and delivered kinds.
func (h *ShippingHandler) Register(b *bus.Bus) *bus.Subscription {
	return b.Subscribe(events.ByCategory(events.CategoryOrder), "shipping-lifecycle", h.Handle)
}

// Handle dispatches one order event.
func (h *ShippingHandler) Handle(e events.Event) error {
	switch ev := e.(type) {
	case events.OrderShipped:
		return h.onOrderShipped(ev)
	case events.OrderDelivered:
		return h.onOrderDelivered(ev)
	default:
		return nil
	}
}

func (h *ShippingHandler) onOrderShipped(ev events.OrderShipped) error {
	msg := fmt.Sprintf("Your order has shipped with %s, tracking number %s.", ev.Carrier, ev.TrackingNumber)
	if err := h.notifier.NotifyCustomer(ev.OrderID, msg); err != nil {
		log.Printf("[ShippingHandler] Shipping notification failed order=%s: %v", ev.OrderID, err)
	}
	h.updateTracking(ev)
	h.updateExternalSystems(ev.OrderID)
	return nil
}

func (h *ShippingHandler) onOrderDelivered(ev events.OrderDelivered) error {
	if err := h.notifier.NotifyCustomer(ev.OrderID, "Your order has been delivered."); err != nil {
		log.Printf("[ShippingHandler] Delivery notification failed order=%s: %v", ev.OrderID, err)
	}

	orderID, err := uuid.Parse(ev.OrderID)
	if err != nil {
		return fmt.Errorf("order delivered with malformed order id %q: %w", ev.OrderID, err)
	}
	h.scheduler.Schedule(orderID)
	h.scheduleFeedbackCollection(ev.OrderID)
	return nil
}

func (h *ShippingHandler) updateTracking(ev events.OrderShipped) {
	log.Printf("[ShippingHandler] Tracking updated order=%s carrier=%s tracking=%s", ev.OrderID, ev.Carrier, ev.TrackingNumber)
}

func (h *ShippingHandler) updateExternalSystems(orderID string) {
	log.Printf("[ShippingHandler] External systems updated order=%s", orderID)
}

func (h *ShippingHandler) scheduleFeedbackCollection(orderID string) {
	log.Printf("[ShippingHandler] Feedback collection scheduled order=%s", orderID)
}
