package choreography

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/bus"
	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// OrderHandler reacts to order lifecycle events: it verifies stock when an
// order is placed, over-orders from suppliers on any shortfall, and opens
// an assembly when the order is confirmed.
type OrderHandler struct {
	inventory     InventoryOps
	assemblies    AssemblyOps
	frameSupplier string
	lensSupplier  string
}

// InventoryOps is the slice of the inventory service the handlers use.
type InventoryOps interface {
	CheckFrameAvailability(ctx context.Context, frameCode string, requiredQuantity int) (bool, error)
	CheckLensAvailability(ctx context.Context, lensCode string, requiredQuantity int) (bool, error)
	OrderFrameWithSupplier(ctx context.Context, frameCode string, quantity int, supplierID string) (*domain.SupplierOrder, error)
	OrderLensWithSupplier(ctx context.Context, lensCode string, quantity int, supplierID string) (*domain.SupplierOrder, error)
}

// AssemblyOps is the slice of the assembly service the order handler uses.
type AssemblyOps interface {
	CreateAssembly(ctx context.Context, orderID uuid.UUID, components []domain.AssemblyComponent) (*domain.Assembly, error)
}

// NewOrderHandler creates an OrderHandler with the default supplier ids
// used for automatic replenishment.
func NewOrderHandler(inventory InventoryOps, assemblies AssemblyOps, frameSupplier, lensSupplier string) *OrderHandler {
	return &OrderHandler{
		inventory:     inventory,
		assemblies:    assemblies,
		frameSupplier: frameSupplier,
		lensSupplier:  lensSupplier,
	}
}

// Register subscribes the handler to every order event.
func (h *OrderHandler) Register(b *bus.Bus) *bus.Subscription {
	return b.Subscribe(events.ByCategory(events.CategoryOrder), "order-lifecycle", h.Handle)
}

// Handle dispatches one order event.
func (h *OrderHandler) Handle(e events.Event) error {
	switch ev := e.(type) {
	case events.OrderPlaced:
		return h.onOrderPlaced(ev)
	case events.OrderConfirmed:
		return h.onOrderConfirmed(ev)
	case events.OrderCanceled:
		// TODO: cancel the order's pending auto-completion timer here via
		// CompletionScheduler.Cancel once the scheduler is threaded through.
		log.Printf("[OrderHandler] Order canceled order=%s reason=%q", ev.OrderID, ev.Reason)
		return nil
	case events.OrderAssembled:
		log.Printf("[OrderHandler] Order assembled order=%s", ev.OrderID)
		return nil
	case events.OrderShipped:
		log.Printf("[OrderHandler] Order shipped order=%s tracking=%s", ev.OrderID, ev.TrackingNumber)
		return nil
	case events.OrderDelivered:
		log.Printf("[OrderHandler] Order delivered order=%s", ev.OrderID)
		return nil
	case events.OrderCompleted:
		log.Printf("[OrderHandler] Order completed order=%s", ev.OrderID)
		return nil
	default:
		return nil
	}
}

// onOrderPlaced checks frame and lens stock for every line item in
// parallel. On any failed check it orders both components of every line
// item from the default suppliers, not only the missing ones.
func (h *OrderHandler) onOrderPlaced(ev events.OrderPlaced) error {
	log.Printf("[OrderHandler] Order placed order=%s items=%d", ev.OrderID, len(ev.Items))
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allAvailable := true
	markUnavailable := func() {
		mu.Lock()
		allAvailable = false
		mu.Unlock()
	}

	for _, item := range ev.Items {
		wg.Add(2)
		go func(it events.OrderItem) {
			defer wg.Done()
			ok, err := h.inventory.CheckFrameAvailability(ctx, it.FrameCode, it.Quantity)
			if err != nil {
				log.Printf("[OrderHandler] Frame availability check failed code=%s: %v", it.FrameCode, err)
			}
			if err != nil || !ok {
				markUnavailable()
			}
		}(item)
		go func(it events.OrderItem) {
			defer wg.Done()
			ok, err := h.inventory.CheckLensAvailability(ctx, it.LensCode, it.Quantity)
			if err != nil {
				log.Printf("[OrderHandler] Lens availability check failed code=%s: %v", it.LensCode, err)
			}
			if err != nil || !ok {
				markUnavailable()
			}
		}(item)
	}
	wg.Wait()

	if allAvailable {
		log.Printf("[OrderHandler] All items in stock order=%s, awaiting confirmation", ev.OrderID)
		return nil
	}

	log.Printf("[OrderHandler] Shortfall detected order=%s, reordering every component", ev.OrderID)
	for _, item := range ev.Items {
		if _, err := h.inventory.OrderFrameWithSupplier(ctx, item.FrameCode, item.Quantity, h.frameSupplier); err != nil {
			log.Printf("[OrderHandler] Supplier order for frame %s failed: %v", item.FrameCode, err)
		}
		if _, err := h.inventory.OrderLensWithSupplier(ctx, item.LensCode, item.Quantity, h.lensSupplier); err != nil {
			log.Printf("[OrderHandler] Supplier order for lens %s failed: %v", item.LensCode, err)
		}
	}
	return nil
}

// onOrderConfirmed opens an empty assembly for the confirmed order.
// Components are attached later as the workshop acquires them.
func (h *OrderHandler) onOrderConfirmed(ev events.OrderConfirmed) error {
	orderID, err := uuid.Parse(ev.OrderID)
	if err != nil {
		return fmt.Errorf("order confirmed with malformed order id %q: %w", ev.OrderID, err)
	}

	a, err := h.assemblies.CreateAssembly(context.Background(), orderID, nil)
	if err != nil {
		return fmt.Errorf("creating assembly for order %s: %w", orderID, err)
	}
	log.Printf("[OrderHandler] Assembly %s opened for order=%s", a.ID, orderID)
	return nil
}
