package domain

import (
	"errors"
	"testing"
)

func newFrameStock(t *testing.T, qty, minimum int) *Inventory {
	t.Helper()
	inv, err := NewInventory(ItemKindFrame, "F001", "Classic Round Frame", qty, minimum)
	if err != nil {
		t.Fatalf("NewInventory failed: %v", err)
	}
	return inv
}

func TestNewInventoryRejectsNegatives(t *testing.T) {
	if _, err := NewInventory(ItemKindFrame, "F001", "x", -1, 0); err == nil {
		t.Error("expected error for negative initial quantity")
	}
	if _, err := NewInventory(ItemKindLens, "L001", "x", 0, -1); err == nil {
		t.Error("expected error for negative minimum stock level")
	}
}

func TestAcquireDecrementsExactly(t *testing.T) {
	inv := newFrameStock(t, 10, 2)
	ok, err := inv.Acquire(3)
	if err != nil || !ok {
		t.Fatalf("acquire failed: ok=%v err=%v", ok, err)
	}
	if inv.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", inv.Quantity)
	}
}

func TestAcquireInsufficientLeavesStateUnchanged(t *testing.T) {
	inv := newFrameStock(t, 5, 2)
	ok, err := inv.Acquire(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected acquire to fail on insufficient stock")
	}
	if inv.Quantity != 5 {
		t.Errorf("quantity changed on failed acquire: %d", inv.Quantity)
	}
}

func TestAcquireWholeStock(t *testing.T) {
	inv := newFrameStock(t, 5, 2)
	ok, err := inv.Acquire(5)
	if err != nil || !ok {
		t.Fatalf("acquire failed: ok=%v err=%v", ok, err)
	}
	if inv.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", inv.Quantity)
	}
}

func TestAcquireRejectsNonPositive(t *testing.T) {
	inv := newFrameStock(t, 5, 2)
	if _, err := inv.Acquire(0); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := inv.Acquire(-1); err == nil {
		t.Error("expected error for negative quantity")
	}
	if inv.Quantity != 5 {
		t.Errorf("quantity changed on rejected acquire: %d", inv.Quantity)
	}
}

func TestRestock(t *testing.T) {
	inv := newFrameStock(t, 2, 5)
	if err := inv.Restock(10); err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if inv.Quantity != 12 {
		t.Errorf("expected quantity 12, got %d", inv.Quantity)
	}
	if err := inv.Restock(0); err == nil {
		t.Error("expected error for zero restock quantity")
	}
}

func TestLowOnStockBoundary(t *testing.T) {
	inv := newFrameStock(t, 5, 5)
	if !inv.LowOnStock() {
		t.Error("quantity equal to minimum must count as low")
	}
	if err := inv.Restock(1); err != nil {
		t.Fatal(err)
	}
	if inv.LowOnStock() {
		t.Error("quantity above minimum must not count as low")
	}
}

func TestCheckAvailability(t *testing.T) {
	inv := newFrameStock(t, 5, 2)
	if !inv.CheckAvailability(5) {
		t.Error("expected availability for exactly the stock on hand")
	}
	if inv.CheckAvailability(6) {
		t.Error("expected no availability beyond the stock on hand")
	}
}

func TestSupplierOrderLifecycle(t *testing.T) {
	so := NewSupplierOrder(ItemKindLens, "L002", 39, "default-lens-supplier")
	if so.Status != SupplierOrderStatusOrdered {
		t.Fatalf("expected ORDERED, got %s", so.Status)
	}

	if err := so.MarkReceived(); err != nil {
		t.Fatalf("receive failed: %v", err)
	}
	if so.Status != SupplierOrderStatusReceived {
		t.Errorf("expected RECEIVED, got %s", so.Status)
	}
	if err := so.MarkReceived(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on double receive, got %v", err)
	}
	if err := so.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition cancelling a received order, got %v", err)
	}
}
