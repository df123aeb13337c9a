package choreography

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CompleteFunc completes an order once its grace period elapses.
type CompleteFunc func(ctx context.Context, orderID uuid.UUID) error

// CompletionScheduler holds one cancellable timer per delivered order and
// completes the order when the timer fires. Timers live in memory only; a
// process restart drops every pending completion.
type CompletionScheduler struct {
	mu       sync.Mutex
	grace    time.Duration
	complete CompleteFunc
	timers   map[uuid.UUID]*time.Timer
	stopped  bool
}

// NewCompletionScheduler creates a scheduler with the given grace period.
func NewCompletionScheduler(grace time.Duration, complete CompleteFunc) *CompletionScheduler {
	return &CompletionScheduler{
		grace:    grace,
		complete: complete,
		timers:   make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule arms the completion timer for an order. Scheduling the same
// order again resets its timer.
func (s *CompletionScheduler) Schedule(orderID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if t, ok := s.timers[orderID]; ok {
		t.Stop()
	}
	log.Printf("[Scheduler] Auto-completion for order=%s in %s", orderID, s.grace)
	s.timers[orderID] = time.AfterFunc(s.grace, func() { s.fire(orderID) })
}

// Cancel disarms the timer for an order. It reports whether a timer was
// pending.
func (s *CompletionScheduler) Cancel(orderID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[orderID]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, orderID)
	log.Printf("[Scheduler] Canceled auto-completion for order=%s", orderID)
	return true
}

// Pending reports the number of armed timers.
func (s *CompletionScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop disarms every timer. The scheduler accepts no further Schedule
// calls afterwards.
func (s *CompletionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *CompletionScheduler) fire(orderID uuid.UUID) {
	s.mu.Lock()
	delete(s.timers, orderID)
	s.mu.Unlock()

	if err := s.complete(context.Background(), orderID); err != nil {
		log.Printf("[Scheduler] Auto-completion of order=%s failed: %v", orderID, err)
		return
	}
	log.Printf("[Scheduler] Order=%s auto-completed after grace period", orderID)
}
