package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// AssemblyStore persists assemblies and their components in PostgreSQL.
type AssemblyStore struct {
	db *sql.DB
}

// NewAssemblyStore creates an AssemblyStore.
func NewAssemblyStore(db *sql.DB) *AssemblyStore {
	return &AssemblyStore{db: db}
}

// FindByID loads an assembly and its components.
func (s *AssemblyStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Assembly, error) {
	return s.findOne(ctx, `SELECT id, order_id, status, created_at, updated_at FROM assemblies WHERE id = $1`, id.String())
}

// FindByOrderID loads the assembly opened for an order.
func (s *AssemblyStore) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Assembly, error) {
	return s.findOne(ctx, `SELECT id, order_id, status, created_at, updated_at FROM assemblies WHERE order_id = $1`, orderID.String())
}

func (s *AssemblyStore) findOne(ctx context.Context, query, arg string) (*domain.Assembly, error) {
	var a domain.Assembly
	var rawID, rawOrder string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&rawID, &rawOrder, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if a.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	if a.OrderID, err = uuid.Parse(rawOrder); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT component_id, kind, description, acquired FROM assembly_components WHERE assembly_id = $1 ORDER BY component_id`,
		a.ID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.AssemblyComponent
		if err := rows.Scan(&c.ID, &c.Kind, &c.Description, &c.Acquired); err != nil {
			return nil, err
		}
		a.Components = append(a.Components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Save upserts the assembly row and rewrites its components in one
// transaction.
func (s *AssemblyStore) Save(ctx context.Context, a *domain.Assembly) (*domain.Assembly, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO assemblies (id, order_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		a.ID.String(), a.OrderID.String(), string(a.Status), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM assembly_components WHERE assembly_id = $1`, a.ID.String()); err != nil {
		return nil, err
	}
	for _, c := range a.Components {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO assembly_components (assembly_id, component_id, kind, description, acquired)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.ID.String(), c.ID, string(c.Kind), c.Description, c.Acquired,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return a, nil
}
