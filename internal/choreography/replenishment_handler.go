package choreography

import (
	"context"
	"log"

	"github.com/contrasam/eyeflow/internal/bus"
	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// ReplenishmentHandler reacts to inventory events and places supplier
// orders according to two policies: shortfall plus a fixed buffer after a
// failed availability check, and a doubled-minimum reorder when stock is
// critically low.
type ReplenishmentHandler struct {
	inventory     InventoryOps
	buffer        int
	threshold     float64
	frameSupplier string
	lensSupplier  string
}

// NewReplenishmentHandler creates a ReplenishmentHandler. buffer is the
// fixed quantity added on top of a shortfall; threshold is the fraction of
// the minimum stock level below which a low-stock report counts as
// critical.
func NewReplenishmentHandler(inventory InventoryOps, buffer int, threshold float64, frameSupplier, lensSupplier string) *ReplenishmentHandler {
	return &ReplenishmentHandler{
		inventory:     inventory,
		buffer:        buffer,
		threshold:     threshold,
		frameSupplier: frameSupplier,
		lensSupplier:  lensSupplier,
	}
}

// Register subscribes the handler to every inventory event.
func (h *ReplenishmentHandler) Register(b *bus.Bus) *bus.Subscription {
	return b.Subscribe(events.ByCategory(events.CategoryInventory), "inventory-replenishment", h.Handle)
}

// Handle dispatches one inventory event.
func (h *ReplenishmentHandler) Handle(e events.Event) error {
	switch ev := e.(type) {
	case events.FrameAvailabilityChecked:
		if ev.Available || ev.AvailableQuantity >= ev.RequestedQuantity {
			return nil
		}
		qty := ev.RequestedQuantity - ev.AvailableQuantity + h.buffer
		log.Printf("[Replenishment] Frame %s short by %d, ordering %d", ev.FrameCode, ev.RequestedQuantity-ev.AvailableQuantity, qty)
		_, err := h.inventory.OrderFrameWithSupplier(context.Background(), ev.FrameCode, qty, h.frameSupplier)
		return err

	case events.LensAvailabilityChecked:
		if ev.Available || ev.AvailableQuantity >= ev.RequestedQuantity {
			return nil
		}
		qty := ev.RequestedQuantity - ev.AvailableQuantity + h.buffer
		log.Printf("[Replenishment] Lens %s short by %d, ordering %d", ev.LensCode, ev.RequestedQuantity-ev.AvailableQuantity, qty)
		_, err := h.inventory.OrderLensWithSupplier(context.Background(), ev.LensCode, qty, h.lensSupplier)
		return err

	case events.InventoryLevelLow:
		return h.onLevelLow(ev)

	case events.FrameAcquired:
		log.Printf("[Replenishment] Frame acquired code=%s quantity=%d remaining=%d", ev.FrameCode, ev.Quantity, ev.RemainingQuantity)
		return nil
	case events.LensAcquired:
		log.Printf("[Replenishment] Lens acquired code=%s quantity=%d remaining=%d", ev.LensCode, ev.Quantity, ev.RemainingQuantity)
		return nil
	case events.FrameOrderedWithSupplier:
		log.Printf("[Replenishment] Frame supplier order placed id=%s code=%s quantity=%d", ev.SupplierOrderID, ev.FrameCode, ev.Quantity)
		return nil
	case events.LensOrderedWithSupplier:
		log.Printf("[Replenishment] Lens supplier order placed id=%s code=%s quantity=%d", ev.SupplierOrderID, ev.LensCode, ev.Quantity)
		return nil
	default:
		return nil
	}
}

// onLevelLow reorders only when stock is critically low, below threshold
// times the minimum. Low but not critical is left to manual procurement.
func (h *ReplenishmentHandler) onLevelLow(ev events.InventoryLevelLow) error {
	critical := float64(ev.CurrentQuantity) < float64(ev.MinimumStockLevel)*h.threshold
	if !critical {
		log.Printf("[Replenishment] Stock low but not critical code=%s current=%d minimum=%d, leaving to manual procurement",
			ev.ItemCode, ev.CurrentQuantity, ev.MinimumStockLevel)
		return nil
	}

	qty := ev.MinimumStockLevel*2 - ev.CurrentQuantity
	log.Printf("[Replenishment] Stock critically low code=%s current=%d minimum=%d, ordering %d",
		ev.ItemCode, ev.CurrentQuantity, ev.MinimumStockLevel, qty)

	ctx := context.Background()
	if ev.ItemKind == string(domain.ItemKindLens) {
		_, err := h.inventory.OrderLensWithSupplier(ctx, ev.ItemCode, qty, h.lensSupplier)
		return err
	}
	_, err := h.inventory.OrderFrameWithSupplier(ctx, ev.ItemCode, qty, h.frameSupplier)
	return err
}
