package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// OrderStore persists orders and their line items in PostgreSQL.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore creates an OrderStore.
func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

// FindByID loads an order and its line items.
func (s *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var o domain.Order
	var rawID, rawCustomer string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, customer_id, status, created_at, updated_at FROM orders WHERE id = $1`,
		id.String(),
	).Scan(&rawID, &rawCustomer, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if o.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	if o.CustomerID, err = uuid.Parse(rawCustomer); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, frame_code, lens_code, quantity, price FROM order_items WHERE order_id = $1 ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.FrameCode, &it.LensCode, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Save upserts the order row and rewrites its line items in one
// transaction.
func (s *OrderStore) Save(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, customer_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		o.ID.String(), o.CustomerID.String(), string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID.String()); err != nil {
		return nil, err
	}
	for i, it := range o.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, position, product_id, frame_code, lens_code, quantity, price)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			o.ID.String(), i, it.ProductID, it.FrameCode, it.LensCode, it.Quantity, it.Price,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}
