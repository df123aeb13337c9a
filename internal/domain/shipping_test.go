package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

var testAddress = ShippingAddress{
	Street:     "123 Main St",
	City:       "Eyeville",
	State:      "CA",
	PostalCode: "90210",
	Country:    "USA",
}

func TestNewShippingIsPending(t *testing.T) {
	s := NewShipping(uuid.New(), testAddress)
	if s.Status() != ShippingStatusPending {
		t.Errorf("expected PENDING, got %s", s.Status())
	}
	if _, ok := s.State.(Pending); !ok {
		t.Errorf("expected Pending variant, got %T", s.State)
	}
}

func TestShipFromPending(t *testing.T) {
	s := NewShipping(uuid.New(), testAddress)
	shipped, err := s.Ship("TRK-123", "DHL")
	if err != nil {
		t.Fatalf("ship failed: %v", err)
	}

	state, ok := shipped.State.(Shipped)
	if !ok {
		t.Fatalf("expected Shipped variant, got %T", shipped.State)
	}
	if state.TrackingNumber != "TRK-123" || state.Carrier != "DHL" {
		t.Errorf("tracking info not carried: %+v", state)
	}

	// The original record is untouched.
	if s.Status() != ShippingStatusPending {
		t.Errorf("original record mutated: %s", s.Status())
	}
}

func TestShipTwiceFails(t *testing.T) {
	s := NewShipping(uuid.New(), testAddress)
	shipped, err := s.Ship("TRK-123", "DHL")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := shipped.Ship("TRK-456", "UPS"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition shipping a shipped record, got %v", err)
	}
}

func TestDeliverCarriesTrackingOver(t *testing.T) {
	s := NewShipping(uuid.New(), testAddress)
	shipped, err := s.Ship("TRK-123", "DHL")
	if err != nil {
		t.Fatal(err)
	}
	delivered, err := shipped.Deliver()
	if err != nil {
		t.Fatalf("deliver failed: %v", err)
	}

	state, ok := delivered.State.(Delivered)
	if !ok {
		t.Fatalf("expected Delivered variant, got %T", delivered.State)
	}
	if state.TrackingNumber != "TRK-123" || state.Carrier != "DHL" {
		t.Errorf("tracking info lost on delivery: %+v", state)
	}
}

func TestDeliverOnlyFromShipped(t *testing.T) {
	s := NewShipping(uuid.New(), testAddress)
	if _, err := s.Deliver(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition delivering a pending record, got %v", err)
	}

	shipped, _ := s.Ship("TRK-1", "DHL")
	delivered, _ := shipped.Deliver()
	if _, err := delivered.Deliver(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on double deliver, got %v", err)
	}
}
