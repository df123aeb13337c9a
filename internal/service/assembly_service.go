package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/events"
)

// AssemblyService drives the workshop assembly lifecycle.
type AssemblyService struct {
	assemblies domain.AssemblyRepository
	bus        Publisher
}

// NewAssemblyService creates an AssemblyService.
func NewAssemblyService(assemblies domain.AssemblyRepository, bus Publisher) *AssemblyService {
	return &AssemblyService{assemblies: assemblies, bus: bus}
}

// CreateAssembly opens a pending assembly for an order.
func (s *AssemblyService) CreateAssembly(ctx context.Context, orderID uuid.UUID, components []domain.AssemblyComponent) (*domain.Assembly, error) {
	log.Printf("[Assembly] Creating assembly for order=%s components=%d", orderID, len(components))

	a := domain.NewAssembly(orderID, components)
	return s.assemblies.Save(ctx, a)
}

// StartAssembly moves an assembly into IN_PROGRESS.
func (s *AssemblyService) StartAssembly(ctx context.Context, assemblyID uuid.UUID) (*domain.Assembly, error) {
	log.Printf("[Assembly] Starting assembly=%s", assemblyID)

	a, err := s.assemblies.FindByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if err := a.Start(); err != nil {
		return nil, err
	}
	return s.assemblies.Save(ctx, a)
}

// AddComponent attaches a component to an assembly that has not finished.
func (s *AssemblyService) AddComponent(ctx context.Context, assemblyID uuid.UUID, c domain.AssemblyComponent) (*domain.Assembly, error) {
	a, err := s.assemblies.FindByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if err := a.AddComponent(c); err != nil {
		return nil, err
	}
	return s.assemblies.Save(ctx, a)
}

// AcquireComponent marks one component of the assembly acquired.
func (s *AssemblyService) AcquireComponent(ctx context.Context, assemblyID uuid.UUID, componentID string) (*domain.Assembly, error) {
	log.Printf("[Assembly] Acquiring component=%s assembly=%s", componentID, assemblyID)

	a, err := s.assemblies.FindByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if err := a.AcquireComponent(componentID); err != nil {
		return nil, err
	}
	return s.assemblies.Save(ctx, a)
}

// CompleteAssembly finishes an assembly and publishes a single
// order.assembled event for its order.
func (s *AssemblyService) CompleteAssembly(ctx context.Context, assemblyID uuid.UUID) (*domain.Assembly, error) {
	log.Printf("[Assembly] Completing assembly=%s", assemblyID)

	a, err := s.assemblies.FindByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if err := a.Complete(); err != nil {
		return nil, err
	}
	saved, err := s.assemblies.Save(ctx, a)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.OrderAssembled{Base: events.NewBase(), OrderID: saved.OrderID.String()})
	return saved, nil
}

// CancelAssembly aborts an assembly that has not completed.
func (s *AssemblyService) CancelAssembly(ctx context.Context, assemblyID uuid.UUID) (*domain.Assembly, error) {
	log.Printf("[Assembly] Cancelling assembly=%s", assemblyID)

	a, err := s.assemblies.FindByID(ctx, assemblyID)
	if err != nil {
		return nil, err
	}
	if err := a.Cancel(); err != nil {
		return nil, err
	}
	return s.assemblies.Save(ctx, a)
}

// FindByID looks up an assembly.
func (s *AssemblyService) FindByID(ctx context.Context, assemblyID uuid.UUID) (*domain.Assembly, error) {
	return s.assemblies.FindByID(ctx, assemblyID)
}

// FindByOrderID looks up the assembly opened for an order.
func (s *AssemblyService) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Assembly, error) {
	return s.assemblies.FindByOrderID(ctx, orderID)
}
