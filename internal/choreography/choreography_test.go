package choreography

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

type supplierCall struct {
	code     string
	quantity int
	supplier string
}

// fakeInventory answers availability checks from a fixed table and records
// every supplier order.
type fakeInventory struct {
	mu        sync.Mutex
	available map[string]bool
	frames    []supplierCall
	lenses    []supplierCall
}

func newFakeInventory(available map[string]bool) *fakeInventory {
	return &fakeInventory{available: available}
}

func (f *fakeInventory) CheckFrameAvailability(_ context.Context, code string, _ int) (bool, error) {
	return f.available[code], nil
}

func (f *fakeInventory) CheckLensAvailability(_ context.Context, code string, _ int) (bool, error) {
	return f.available[code], nil
}

func (f *fakeInventory) OrderFrameWithSupplier(_ context.Context, code string, qty int, supplierID string) (*domain.SupplierOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, supplierCall{code: code, quantity: qty, supplier: supplierID})
	return domain.NewSupplierOrder(domain.ItemKindFrame, code, qty, supplierID), nil
}

func (f *fakeInventory) OrderLensWithSupplier(_ context.Context, code string, qty int, supplierID string) (*domain.SupplierOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lenses = append(f.lenses, supplierCall{code: code, quantity: qty, supplier: supplierID})
	return domain.NewSupplierOrder(domain.ItemKindLens, code, qty, supplierID), nil
}

func (f *fakeInventory) orders() (frames, lenses []supplierCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]supplierCall(nil), f.frames...), append([]supplierCall(nil), f.lenses...)
}

type fakeAssemblies struct {
	mu      sync.Mutex
	created []*domain.Assembly
}

func (f *fakeAssemblies) CreateAssembly(_ context.Context, orderID uuid.UUID, components []domain.AssemblyComponent) (*domain.Assembly, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := domain.NewAssembly(orderID, components)
	f.created = append(f.created, a)
	return a, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) NotifyCustomer(orderID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, orderID+": "+message)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func placedEvent(items ...events.OrderItem) events.OrderPlaced {
	return events.OrderPlaced{
		Base:       events.NewBase(),
		OrderID:    uuid.NewString(),
		CustomerID: uuid.NewString(),
		Items:      items,
	}
}

func TestOrderPlaced_AllInStockPlacesNoSupplierOrders(t *testing.T) {
	inv := newFakeInventory(map[string]bool{"F001": true, "L001": true})
	h := NewOrderHandler(inv, &fakeAssemblies{}, "default-frame-supplier", "default-lens-supplier")

	ev := placedEvent(events.OrderItem{ProductID: "p1", FrameCode: "F001", LensCode: "L001", Quantity: 1})
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	frames, lenses := inv.orders()
	if len(frames) != 0 || len(lenses) != 0 {
		t.Errorf("expected no supplier orders, got frames=%v lenses=%v", frames, lenses)
	}
}

func TestOrderPlaced_AnyShortfallReordersEveryPair(t *testing.T) {
	// Only F002 is short, yet every frame and lens of the order gets
	// reordered with its line item quantity.
	inv := newFakeInventory(map[string]bool{"F001": true, "L001": true, "F002": false, "L002": true})
	h := NewOrderHandler(inv, &fakeAssemblies{}, "default-frame-supplier", "default-lens-supplier")

	ev := placedEvent(
		events.OrderItem{ProductID: "p1", FrameCode: "F001", LensCode: "L001", Quantity: 2},
		events.OrderItem{ProductID: "p2", FrameCode: "F002", LensCode: "L002", Quantity: 3},
	)
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	frames, lenses := inv.orders()
	if len(frames) != 2 || len(lenses) != 2 {
		t.Fatalf("expected 2 frame and 2 lens orders, got frames=%v lenses=%v", frames, lenses)
	}
	if frames[0] != (supplierCall{"F001", 2, "default-frame-supplier"}) ||
		frames[1] != (supplierCall{"F002", 3, "default-frame-supplier"}) {
		t.Errorf("unexpected frame orders: %v", frames)
	}
	if lenses[0] != (supplierCall{"L001", 2, "default-lens-supplier"}) ||
		lenses[1] != (supplierCall{"L002", 3, "default-lens-supplier"}) {
		t.Errorf("unexpected lens orders: %v", lenses)
	}
}

func TestOrderConfirmed_OpensEmptyAssembly(t *testing.T) {
	assemblies := &fakeAssemblies{}
	h := NewOrderHandler(newFakeInventory(nil), assemblies, "default-frame-supplier", "default-lens-supplier")

	orderID := uuid.New()
	ev := events.OrderConfirmed{Base: events.NewBase(), OrderID: orderID.String()}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(assemblies.created) != 1 {
		t.Fatalf("expected 1 assembly, got %d", len(assemblies.created))
	}
	a := assemblies.created[0]
	if a.OrderID != orderID {
		t.Errorf("assembly order id = %s, want %s", a.OrderID, orderID)
	}
	if len(a.Components) != 0 {
		t.Errorf("assembly must start without components, got %d", len(a.Components))
	}
	if a.Status != domain.AssemblyStatusPending {
		t.Errorf("expected PENDING, got %s", a.Status)
	}
}

func TestOrderConfirmed_MalformedOrderIDErrors(t *testing.T) {
	h := NewOrderHandler(newFakeInventory(nil), &fakeAssemblies{}, "f", "l")
	ev := events.OrderConfirmed{Base: events.NewBase(), OrderID: "not-a-uuid"}
	if err := h.Handle(ev); err == nil {
		t.Fatal("expected error for malformed order id")
	}
}

func newReplenishment(inv *fakeInventory) *ReplenishmentHandler {
	return NewReplenishmentHandler(inv, 10, 0.2, "default-frame-supplier", "default-lens-supplier")
}

func TestReplenishment_ShortfallPlusBuffer(t *testing.T) {
	inv := newFakeInventory(nil)
	h := newReplenishment(inv)

	// 5 in stock, 8 requested, buffer 10: order (8-5)+10 = 13.
	ev := events.FrameAvailabilityChecked{
		Base:              events.NewBase(),
		InventoryID:       uuid.NewString(),
		FrameCode:         "F001",
		Available:         false,
		RequestedQuantity: 8,
		AvailableQuantity: 5,
	}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	frames, _ := inv.orders()
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame order, got %v", frames)
	}
	if frames[0] != (supplierCall{"F001", 13, "default-frame-supplier"}) {
		t.Errorf("unexpected order: %+v", frames[0])
	}
}

func TestReplenishment_AvailableCheckTakesNoAction(t *testing.T) {
	inv := newFakeInventory(nil)
	h := newReplenishment(inv)

	ev := events.LensAvailabilityChecked{
		Base:              events.NewBase(),
		LensCode:          "L001",
		Available:         true,
		RequestedQuantity: 2,
		AvailableQuantity: 100,
	}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	frames, lenses := inv.orders()
	if len(frames) != 0 || len(lenses) != 0 {
		t.Errorf("expected no orders, got frames=%v lenses=%v", frames, lenses)
	}
}

func TestReplenishment_CriticallyLowReordersDoubledMinimum(t *testing.T) {
	inv := newFakeInventory(nil)
	h := newReplenishment(inv)

	// 1 < 20*0.2, so order (20*2)-1 = 39.
	ev := events.InventoryLevelLow{
		Base:              events.NewBase(),
		ItemKind:          "LENS",
		ItemCode:          "L002",
		CurrentQuantity:   1,
		MinimumStockLevel: 20,
	}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	_, lenses := inv.orders()
	if len(lenses) != 1 {
		t.Fatalf("expected 1 lens order, got %v", lenses)
	}
	if lenses[0] != (supplierCall{"L002", 39, "default-lens-supplier"}) {
		t.Errorf("unexpected order: %+v", lenses[0])
	}
}

func TestReplenishment_LowButNotCriticalLeftToManual(t *testing.T) {
	inv := newFakeInventory(nil)
	h := newReplenishment(inv)

	// 5 >= 20*0.2, low but not critical.
	ev := events.InventoryLevelLow{
		Base:              events.NewBase(),
		ItemKind:          "FRAME",
		ItemCode:          "F003",
		CurrentQuantity:   5,
		MinimumStockLevel: 20,
	}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	frames, lenses := inv.orders()
	if len(frames) != 0 || len(lenses) != 0 {
		t.Errorf("expected no orders, got frames=%v lenses=%v", frames, lenses)
	}
}

func TestScheduler_CompletesAfterGracePeriod(t *testing.T) {
	done := make(chan uuid.UUID, 1)
	s := NewCompletionScheduler(10*time.Millisecond, func(_ context.Context, id uuid.UUID) error {
		done <- id
		return nil
	})
	defer s.Stop()

	orderID := uuid.New()
	s.Schedule(orderID)

	select {
	case id := <-done:
		if id != orderID {
			t.Errorf("completed order %s, want %s", id, orderID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	if s.Pending() != 0 {
		t.Errorf("fired timer still pending: %d", s.Pending())
	}
}

func TestScheduler_CancelDisarmsTimer(t *testing.T) {
	done := make(chan uuid.UUID, 1)
	s := NewCompletionScheduler(30*time.Millisecond, func(_ context.Context, id uuid.UUID) error {
		done <- id
		return nil
	})
	defer s.Stop()

	orderID := uuid.New()
	s.Schedule(orderID)
	if !s.Cancel(orderID) {
		t.Fatal("expected a pending timer to cancel")
	}
	if s.Cancel(orderID) {
		t.Error("second cancel must report no pending timer")
	}

	select {
	case <-done:
		t.Fatal("canceled timer fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestShippingHandler_DeliveredSchedulesCompletionAndNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewCompletionScheduler(time.Hour, func(context.Context, uuid.UUID) error { return nil })
	defer s.Stop()
	h := NewShippingHandler(notifier, s)

	ev := events.OrderDelivered{Base: events.NewBase(), OrderID: uuid.NewString()}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if s.Pending() != 1 {
		t.Errorf("expected 1 armed timer, got %d", s.Pending())
	}
	if notifier.count() != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.count())
	}
}

func TestShippingHandler_ShippedNotifiesWithTracking(t *testing.T) {
	notifier := &fakeNotifier{}
	s := NewCompletionScheduler(time.Hour, func(context.Context, uuid.UUID) error { return nil })
	defer s.Stop()
	h := NewShippingHandler(notifier, s)

	ev := events.OrderShipped{Base: events.NewBase(), OrderID: uuid.NewString(), TrackingNumber: "TRK-1", Carrier: "DHL"}
	if err := h.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if notifier.count() != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.count())
	}
	if s.Pending() != 0 {
		t.Errorf("shipped must not arm the completion timer, pending=%d", s.Pending())
	}
}
