// Package bus implements the in-process event bus the lifecycles
// coordinate through. Dispatch is by event kind (or category), multicast:
// every matching subscription receives its own copy on its own goroutine,
// with an unbounded FIFO buffer so a slow consumer never blocks a
// publisher or another subscriber.
package bus

import (
	"log"
	"sync"

	"github.com/contrasam/eyeflow/pkg/events"
)

// Handler processes one delivered event. A non-nil error is logged and the
// subscription keeps receiving subsequent events.
type Handler func(e events.Event) error

// Bus is the process-wide subscription registry. Construct it once at
// startup and Close it at shutdown; nothing survives a restart.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	closed bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers handler h under a diagnostic name for all events
// matching interest. Delivery starts with the next published event; there
// is no replay. The returned subscription can be closed independently.
func (b *Bus) Subscribe(interest events.Interest, name string, h Handler) *Subscription {
	s := newSubscription(interest, name, h)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		s.Close()
		return s
	}
	b.subs = append(b.subs, s)
	log.Printf("[Bus] subscription registered: name=%s interest=%s", name, interest)
	return s
}

// Publish hands the event to every matching subscription and returns once
// it has been enqueued everywhere. Handlers run asynchronously. Publishing
// with zero matching subscribers is a no-op.
func (b *Bus) Publish(e events.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		log.Printf("[Bus] dropping %s: bus closed", e.Kind())
		return
	}
	for _, s := range b.subs {
		if s.interest.Matches(e.Kind()) {
			s.enqueue(e)
		}
	}
}

// PublishAll publishes the events in order. There is no atomicity: events
// already published stay published regardless of what follows.
func (b *Bus) PublishAll(evs ...events.Event) {
	for _, e := range evs {
		b.Publish(e)
	}
}

// Close tears down every subscription and rejects further publishes.
// Events still buffered in subscription queues are discarded.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
	log.Printf("[Bus] closed (%d subscriptions stopped)", len(subs))
}
