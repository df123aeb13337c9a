package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies a concrete event type on the bus, e.g. "order.placed".
// The segment before the dot is the event's category.
type Kind string

// Category groups related event kinds so a subscriber can express
// interest in a whole family of events instead of a single kind.
type Category string

const (
	CategoryOrder     Category = "order"
	CategoryInventory Category = "inventory"
)

const (
	KindOrderPlaced    Kind = "order.placed"
	KindOrderConfirmed Kind = "order.confirmed"
	KindOrderCanceled  Kind = "order.canceled"
	KindOrderAssembled Kind = "order.assembled"
	KindOrderShipped   Kind = "order.shipped"
	KindOrderDelivered Kind = "order.delivered"
	KindOrderCompleted Kind = "order.completed"

	KindFrameAvailabilityChecked Kind = "inventory.frame_availability_checked"
	KindLensAvailabilityChecked  Kind = "inventory.lens_availability_checked"
	KindInventoryLevelLow        Kind = "inventory.level_low"
	KindFrameAcquired            Kind = "inventory.frame_acquired"
	KindLensAcquired             Kind = "inventory.lens_acquired"
	KindFrameOrderedWithSupplier Kind = "inventory.frame_ordered_with_supplier"
	KindLensOrderedWithSupplier  Kind = "inventory.lens_ordered_with_supplier"
)

// Category returns the category segment of the kind.
func (k Kind) Category() Category {
	if i := strings.IndexByte(string(k), '.'); i > 0 {
		return Category(k[:i])
	}
	return Category(k)
}

// Event is an immutable fact describing a past state change.
type Event interface {
	EventID() uuid.UUID
	OccurredAt() time.Time
	Kind() Kind
}

// Base carries the identity and timestamp common to every event.
type Base struct {
	ID string    `json:"event_id"`
	At time.Time `json:"occurred_at"`
}

// NewBase stamps a fresh event identity.
func NewBase() Base {
	return Base{ID: uuid.New().String(), At: time.Now()}
}

func (b Base) EventID() uuid.UUID {
	id, _ := uuid.Parse(b.ID)
	return id
}

func (b Base) OccurredAt() time.Time { return b.At }

// Interest describes which event kinds a subscription wants to receive:
// one exact kind, a whole category, or everything.
type Interest struct {
	kind     Kind
	category Category
	all      bool
}

// ByKind matches only events of exactly the given kind.
func ByKind(k Kind) Interest { return Interest{kind: k} }

// ByCategory matches every kind in the given category.
func ByCategory(c Category) Interest { return Interest{category: c} }

// All matches every event.
func All() Interest { return Interest{all: true} }

// Matches reports whether an event of the given kind satisfies the interest.
func (i Interest) Matches(k Kind) bool {
	switch {
	case i.all:
		return true
	case i.kind != "":
		return i.kind == k
	case i.category != "":
		return i.category == k.Category()
	default:
		return false
	}
}

func (i Interest) String() string {
	switch {
	case i.all:
		return "*"
	case i.kind != "":
		return string(i.kind)
	case i.category != "":
		return string(i.category) + ".*"
	default:
		return "(none)"
	}
}
