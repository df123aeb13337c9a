package relay

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/contrasam/eyeflow/internal/bus"
	"github.com/contrasam/eyeflow/pkg/events"
)

// WirePublisher is the outbound broker surface the relay writes to.
type WirePublisher interface {
	Publish(routingKey string, body []byte, eventID string) error
}

// Relay mirrors every domain event onto the message broker as JSON, with
// the event kind as the routing key. External consumers see the same
// facts the in-process handlers react to.
type Relay struct {
	pub WirePublisher
}

// New creates a Relay.
func New(pub WirePublisher) *Relay {
	return &Relay{pub: pub}
}

// Register subscribes the relay to every event on the bus.
func (r *Relay) Register(b *bus.Bus) *bus.Subscription {
	return b.Subscribe(events.All(), "event-relay", r.Handle)
}

// Handle serializes one event and hands it to the broker.
func (r *Relay) Handle(e events.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling %s event: %w", e.Kind(), err)
	}
	if err := r.pub.Publish(string(e.Kind()), body, e.EventID().String()); err != nil {
		return fmt.Errorf("relaying %s event: %w", e.Kind(), err)
	}
	log.Printf("[Relay] Mirrored event kind=%s id=%s", e.Kind(), e.EventID())
	return nil
}
