package relay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/pkg/events"
)

type published struct {
	routingKey string
	body       []byte
	eventID    string
}

type fakeWire struct {
	out []published
	err error
}

func (f *fakeWire) Publish(routingKey string, body []byte, eventID string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, published{routingKey: routingKey, body: body, eventID: eventID})
	return nil
}

func TestRelay_MirrorsEventAsJSON(t *testing.T) {
	wire := &fakeWire{}
	r := New(wire)

	ev := events.OrderShipped{
		Base:           events.NewBase(),
		OrderID:        uuid.NewString(),
		TrackingNumber: "TRK-1",
		Carrier:        "DHL",
	}
	if err := r.Handle(ev); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(wire.out) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(wire.out))
	}
	msg := wire.out[0]
	if msg.routingKey != "order.shipped" {
		t.Errorf("routing key = %s, want order.shipped", msg.routingKey)
	}
	if msg.eventID != ev.EventID().String() {
		t.Errorf("correlation id = %s, want %s", msg.eventID, ev.EventID())
	}

	var decoded map[string]any
	if err := json.Unmarshal(msg.body, &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if decoded["order_id"] != ev.OrderID || decoded["tracking_number"] != "TRK-1" {
		t.Errorf("unexpected body: %s", msg.body)
	}
}

func TestRelay_BrokerErrorPropagates(t *testing.T) {
	wire := &fakeWire{err: errors.New("broker down")}
	r := New(wire)

	ev := events.OrderConfirmed{Base: events.NewBase(), OrderID: uuid.NewString()}
	if err := r.Handle(ev); err == nil {
		t.Fatal("expected broker error to propagate")
	}
}
