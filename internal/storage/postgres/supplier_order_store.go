package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// SupplierOrderStore persists supplier orders in PostgreSQL.
type SupplierOrderStore struct {
	db *sql.DB
}

// NewSupplierOrderStore creates a SupplierOrderStore.
func NewSupplierOrderStore(db *sql.DB) *SupplierOrderStore {
	return &SupplierOrderStore{db: db}
}

// FindByID loads one supplier order.
func (s *SupplierOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.SupplierOrder, error) {
	var so domain.SupplierOrder
	var rawID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, item_code, quantity, supplier_id, status, ordered_at FROM supplier_orders WHERE id = $1`,
		id.String(),
	).Scan(&rawID, &so.Kind, &so.ItemCode, &so.Quantity, &so.SupplierID, &so.Status, &so.OrderedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if so.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	return &so, nil
}

// Save upserts the supplier order.
func (s *SupplierOrderStore) Save(ctx context.Context, so *domain.SupplierOrder) (*domain.SupplierOrder, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO supplier_orders (id, kind, item_code, quantity, supplier_id, status, ordered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		so.ID.String(), string(so.Kind), so.ItemCode, so.Quantity, so.SupplierID, string(so.Status), so.OrderedAt,
	)
	if err != nil {
		return nil, err
	}
	return so, nil
}
