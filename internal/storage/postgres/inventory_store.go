package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// InventoryStore persists inventory items in PostgreSQL.
type InventoryStore struct {
	db *sql.DB
}

// NewInventoryStore creates an InventoryStore.
func NewInventoryStore(db *sql.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

const inventoryColumns = `id, kind, item_code, description, quantity, minimum_stock_level, created_at, updated_at`

func scanInventory(row interface{ Scan(...any) error }) (*domain.Inventory, error) {
	var inv domain.Inventory
	var rawID string
	err := row.Scan(&rawID, &inv.Kind, &inv.ItemCode, &inv.Description, &inv.Quantity, &inv.MinimumStockLevel, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if inv.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindByID loads one inventory item.
func (s *InventoryStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Inventory, error) {
	inv, err := scanInventory(s.db.QueryRowContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

// FindByItemCode loads the inventory item with the given code.
func (s *InventoryStore) FindByItemCode(ctx context.Context, itemCode string) (*domain.Inventory, error) {
	inv, err := scanInventory(s.db.QueryRowContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory WHERE item_code = $1`, itemCode))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return inv, err
}

// FindByKind lists inventory items of one kind.
func (s *InventoryStore) FindByKind(ctx context.Context, kind domain.ItemKind) ([]*domain.Inventory, error) {
	return s.list(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE kind = $1 ORDER BY item_code`, string(kind))
}

// FindLowStock lists items at or below their minimum stock level.
func (s *InventoryStore) FindLowStock(ctx context.Context) ([]*domain.Inventory, error) {
	return s.list(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE quantity <= minimum_stock_level ORDER BY item_code`)
}

// Count reports the number of inventory items.
func (s *InventoryStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&n)
	return n, err
}

// Save upserts the inventory item.
func (s *InventoryStore) Save(ctx context.Context, inv *domain.Inventory) (*domain.Inventory, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inventory (id, kind, item_code, description, quantity, minimum_stock_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET quantity = EXCLUDED.quantity,
			minimum_stock_level = EXCLUDED.minimum_stock_level,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at`,
		inv.ID.String(), string(inv.Kind), inv.ItemCode, inv.Description, inv.Quantity, inv.MinimumStockLevel, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InventoryStore) list(ctx context.Context, query string, args ...any) ([]*domain.Inventory, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
