// Package service exposes one operation per business intent. Every
// operation follows the same pattern: load the aggregate, apply the
// transition, persist through the repository, then publish the resulting
// fact(s) on the event bus.
package service

import (
	"github.com/contrasam/eyeflow/pkg/events"
)

// Publisher is the slice of the event bus the services need.
type Publisher interface {
	Publish(e events.Event)
	PublishAll(evs ...events.Event)
}
