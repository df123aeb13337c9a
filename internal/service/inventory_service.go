package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// InventoryService drives stock checks, acquisitions, restocking and
// supplier ordering.
type InventoryService struct {
	inventory      domain.InventoryRepository
	supplierOrders domain.SupplierOrderRepository
	bus            Publisher
}

// NewInventoryService creates an InventoryService.
func NewInventoryService(inventory domain.InventoryRepository, supplierOrders domain.SupplierOrderRepository, bus Publisher) *InventoryService {
	return &InventoryService{inventory: inventory, supplierOrders: supplierOrders, bus: bus}
}

// CreateItem registers a new stock record.
func (s *InventoryService) CreateItem(ctx context.Context, kind domain.ItemKind, itemCode, description string, initialQuantity, minimumStockLevel int) (*domain.Inventory, error) {
	log.Printf("[Inventory] Creating item code=%s kind=%s quantity=%d", itemCode, kind, initialQuantity)

	inv, err := domain.NewInventory(kind, itemCode, description, initialQuantity, minimumStockLevel)
	if err != nil {
		return nil, err
	}
	return s.inventory.Save(ctx, inv)
}

// CheckFrameAvailability reports whether the requested quantity of a frame
// is in stock and publishes the check result. An unknown frame code is
// simply unavailable; no event is published for it.
func (s *InventoryService) CheckFrameAvailability(ctx context.Context, frameCode string, requiredQuantity int) (bool, error) {
	log.Printf("[Inventory] Checking frame availability code=%s quantity=%d", frameCode, requiredQuantity)

	inv, err := s.inventory.FindByItemCode(ctx, frameCode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	available := inv.CheckAvailability(requiredQuantity)
	s.bus.Publish(events.FrameAvailabilityChecked{
		Base:              events.NewBase(),
		InventoryID:       inv.ID.String(),
		FrameCode:         frameCode,
		Available:         available,
		RequestedQuantity: requiredQuantity,
		AvailableQuantity: inv.Quantity,
	})
	return available, nil
}

// CheckLensAvailability is the lens counterpart of CheckFrameAvailability.
func (s *InventoryService) CheckLensAvailability(ctx context.Context, lensCode string, requiredQuantity int) (bool, error) {
	log.Printf("[Inventory] Checking lens availability code=%s quantity=%d", lensCode, requiredQuantity)

	inv, err := s.inventory.FindByItemCode(ctx, lensCode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	available := inv.CheckAvailability(requiredQuantity)
	s.bus.Publish(events.LensAvailabilityChecked{
		Base:              events.NewBase(),
		InventoryID:       inv.ID.String(),
		LensCode:          lensCode,
		Available:         available,
		RequestedQuantity: requiredQuantity,
		AvailableQuantity: inv.Quantity,
	})
	return available, nil
}

// AcquireFrame takes frames out of stock. On success it publishes
// inventory.frame_acquired, followed by inventory.level_low when the
// acquisition left the item at or below its minimum.
func (s *InventoryService) AcquireFrame(ctx context.Context, frameCode string, quantity int) (bool, error) {
	log.Printf("[Inventory] Acquiring frame code=%s quantity=%d", frameCode, quantity)

	inv, err := s.inventory.FindByItemCode(ctx, frameCode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ok, err := inv.Acquire(quantity)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	saved, err := s.inventory.Save(ctx, inv)
	if err != nil {
		return false, err
	}

	evs := []events.Event{events.FrameAcquired{
		Base:              events.NewBase(),
		InventoryID:       saved.ID.String(),
		FrameCode:         frameCode,
		Quantity:          quantity,
		RemainingQuantity: saved.Quantity,
	}}
	if saved.LowOnStock() {
		evs = append(evs, events.InventoryLevelLow{
			Base:              events.NewBase(),
			InventoryID:       saved.ID.String(),
			ItemKind:          string(domain.ItemKindFrame),
			ItemCode:          frameCode,
			CurrentQuantity:   saved.Quantity,
			MinimumStockLevel: saved.MinimumStockLevel,
		})
	}
	s.bus.PublishAll(evs...)
	return true, nil
}

// AcquireLens is the lens counterpart of AcquireFrame.
func (s *InventoryService) AcquireLens(ctx context.Context, lensCode string, quantity int) (bool, error) {
	log.Printf("[Inventory] Acquiring lens code=%s quantity=%d", lensCode, quantity)

	inv, err := s.inventory.FindByItemCode(ctx, lensCode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ok, err := inv.Acquire(quantity)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	saved, err := s.inventory.Save(ctx, inv)
	if err != nil {
		return false, err
	}

	evs := []events.Event{events.LensAcquired{
		Base:              events.NewBase(),
		InventoryID:       saved.ID.String(),
		LensCode:          lensCode,
		Quantity:          quantity,
		RemainingQuantity: saved.Quantity,
	}}
	if saved.LowOnStock() {
		evs = append(evs, events.InventoryLevelLow{
			Base:              events.NewBase(),
			InventoryID:       saved.ID.String(),
			ItemKind:          string(domain.ItemKindLens),
			ItemCode:          lensCode,
			CurrentQuantity:   saved.Quantity,
			MinimumStockLevel: saved.MinimumStockLevel,
		})
	}
	s.bus.PublishAll(evs...)
	return true, nil
}

// OrderFrameWithSupplier records a supplier order for frames and publishes
// inventory.frame_ordered_with_supplier.
func (s *InventoryService) OrderFrameWithSupplier(ctx context.Context, frameCode string, quantity int, supplierID string) (*domain.SupplierOrder, error) {
	log.Printf("[Inventory] Ordering frames from supplier code=%s quantity=%d supplier=%s", frameCode, quantity, supplierID)

	so := domain.NewSupplierOrder(domain.ItemKindFrame, frameCode, quantity, supplierID)
	saved, err := s.supplierOrders.Save(ctx, so)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.FrameOrderedWithSupplier{
		Base:            events.NewBase(),
		SupplierOrderID: saved.ID.String(),
		FrameCode:       frameCode,
		Quantity:        quantity,
		SupplierID:      supplierID,
	})
	return saved, nil
}

// OrderLensWithSupplier records a supplier order for lenses and publishes
// inventory.lens_ordered_with_supplier.
func (s *InventoryService) OrderLensWithSupplier(ctx context.Context, lensCode string, quantity int, supplierID string) (*domain.SupplierOrder, error) {
	log.Printf("[Inventory] Ordering lenses from supplier code=%s quantity=%d supplier=%s", lensCode, quantity, supplierID)

	so := domain.NewSupplierOrder(domain.ItemKindLens, lensCode, quantity, supplierID)
	saved, err := s.supplierOrders.Save(ctx, so)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.LensOrderedWithSupplier{
		Base:            events.NewBase(),
		SupplierOrderID: saved.ID.String(),
		LensCode:        lensCode,
		Quantity:        quantity,
		SupplierID:      supplierID,
	})
	return saved, nil
}

// RestockInventory adds stock to an existing item.
func (s *InventoryService) RestockInventory(ctx context.Context, inventoryID uuid.UUID, quantity int) (*domain.Inventory, error) {
	log.Printf("[Inventory] Restocking inventory=%s quantity=%d", inventoryID, quantity)

	inv, err := s.inventory.FindByID(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	if err := inv.Restock(quantity); err != nil {
		return nil, err
	}
	return s.inventory.Save(ctx, inv)
}

// RestockByItemCode adds stock to the item with the given code.
func (s *InventoryService) RestockByItemCode(ctx context.Context, itemCode string, quantity int) (*domain.Inventory, error) {
	inv, err := s.inventory.FindByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if err := inv.Restock(quantity); err != nil {
		return nil, err
	}
	return s.inventory.Save(ctx, inv)
}

// FindSupplierOrder looks up a supplier order.
func (s *InventoryService) FindSupplierOrder(ctx context.Context, supplierOrderID uuid.UUID) (*domain.SupplierOrder, error) {
	return s.supplierOrders.FindByID(ctx, supplierOrderID)
}

// MarkSupplierOrderReceived records delivery of a supplier order.
func (s *InventoryService) MarkSupplierOrderReceived(ctx context.Context, supplierOrderID uuid.UUID) (*domain.SupplierOrder, error) {
	so, err := s.supplierOrders.FindByID(ctx, supplierOrderID)
	if err != nil {
		return nil, err
	}
	if err := so.MarkReceived(); err != nil {
		return nil, err
	}
	return s.supplierOrders.Save(ctx, so)
}

// FindByID looks up a stock record.
func (s *InventoryService) FindByID(ctx context.Context, inventoryID uuid.UUID) (*domain.Inventory, error) {
	return s.inventory.FindByID(ctx, inventoryID)
}

// FindByItemCode looks up a stock record by its item code.
func (s *InventoryService) FindByItemCode(ctx context.Context, itemCode string) (*domain.Inventory, error) {
	return s.inventory.FindByItemCode(ctx, itemCode)
}

// FindByKind lists stock records of one kind.
func (s *InventoryService) FindByKind(ctx context.Context, kind domain.ItemKind) ([]*domain.Inventory, error) {
	return s.inventory.FindByKind(ctx, kind)
}

// FindLowStock lists items at or below their minimum stock level.
func (s *InventoryService) FindLowStock(ctx context.Context) ([]*domain.Inventory, error) {
	return s.inventory.FindLowStock(ctx)
}
