package bus

import (
	"log"
	"sync"

	"github.com/contrasam/eyeflow/pkg/events"
)

// Subscription is one registered consumer. Events are delivered in publish
// order on a dedicated goroutine; the queue grows without bound rather
// than dropping or blocking.
type Subscription struct {
	name     string
	interest events.Interest
	handler  Handler

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []events.Event
	closed bool
	done   chan struct{}
}

func newSubscription(interest events.Interest, name string, h Handler) *Subscription {
	s := &Subscription{
		name:     name,
		interest: interest,
		handler:  h,
		done:     make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

func (s *Subscription) enqueue(e events.Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, e)
	s.mu.Unlock()
	s.cond.Signal()
}

func (s *Subscription) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			return
		}
		e := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		// One bad event must not take the subscription down.
		if err := s.handler(e); err != nil {
			log.Printf("[Bus] %s: error handling %s: %v", s.name, e.Kind(), err)
		}
	}
}

// Close stops delivery. Buffered events that were not yet handled are
// discarded. Safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.queue = nil
	s.mu.Unlock()
	s.cond.Broadcast()
	<-s.done
}
