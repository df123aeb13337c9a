package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssemblyStatus is the lifecycle status of an assembly.
type AssemblyStatus string

const (
	AssemblyStatusPending    AssemblyStatus = "PENDING"
	AssemblyStatusInProgress AssemblyStatus = "IN_PROGRESS"
	AssemblyStatusCompleted  AssemblyStatus = "COMPLETED"
	AssemblyStatusCancelled  AssemblyStatus = "CANCELLED"
)

// AssemblyComponent is one part that must be acquired before the assembly
// can complete.
type AssemblyComponent struct {
	ID          string
	Kind        ItemKind
	Description string
	Acquired    bool
}

// Assembly is the workshop process for one order. It references the order
// by identity only.
type Assembly struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Status     AssemblyStatus
	Components []AssemblyComponent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAssembly creates an assembly in PENDING status.
func NewAssembly(orderID uuid.UUID, components []AssemblyComponent) *Assembly {
	now := time.Now()
	return &Assembly{
		ID:         uuid.New(),
		OrderID:    orderID,
		Status:     AssemblyStatusPending,
		Components: append([]AssemblyComponent(nil), components...),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Start moves the assembly from PENDING to IN_PROGRESS.
func (a *Assembly) Start() error {
	if a.Status != AssemblyStatusPending {
		return fmt.Errorf("%w: assembly can only be started from PENDING, is %s", ErrInvalidTransition, a.Status)
	}
	a.Status = AssemblyStatusInProgress
	a.UpdatedAt = time.Now()
	return nil
}

// Complete finishes the assembly. It requires IN_PROGRESS status and every
// component acquired.
func (a *Assembly) Complete() error {
	if a.Status != AssemblyStatusInProgress {
		return fmt.Errorf("%w: assembly can only be completed from IN_PROGRESS, is %s", ErrInvalidTransition, a.Status)
	}
	for _, c := range a.Components {
		if !c.Acquired {
			return fmt.Errorf("%w: component %s not acquired", ErrInvalidTransition, c.ID)
		}
	}
	a.Status = AssemblyStatusCompleted
	a.UpdatedAt = time.Now()
	return nil
}

// Cancel aborts an assembly that has not completed.
func (a *Assembly) Cancel() error {
	if a.Status == AssemblyStatusCompleted || a.Status == AssemblyStatusCancelled {
		return fmt.Errorf("%w: cannot cancel a %s assembly", ErrInvalidTransition, a.Status)
	}
	a.Status = AssemblyStatusCancelled
	a.UpdatedAt = time.Now()
	return nil
}

// AcquireComponent marks the named component acquired.
func (a *Assembly) AcquireComponent(componentID string) error {
	for i := range a.Components {
		if a.Components[i].ID == componentID {
			a.Components[i].Acquired = true
			a.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: component %s in assembly %s", ErrNotFound, componentID, a.ID)
}

// AddComponent attaches a component to a pending or running assembly.
func (a *Assembly) AddComponent(c AssemblyComponent) error {
	if a.Status == AssemblyStatusCompleted || a.Status == AssemblyStatusCancelled {
		return fmt.Errorf("%w: cannot add components to a %s assembly", ErrInvalidTransition, a.Status)
	}
	a.Components = append(a.Components, c)
	a.UpdatedAt = time.Now()
	return nil
}
