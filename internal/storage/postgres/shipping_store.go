package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

// ShippingStore persists shipping records in PostgreSQL. The tagged state
// is flattened to a status column plus nullable tracking columns and
// rebuilt into the proper variant on load.
type ShippingStore struct {
	db *sql.DB
}

// NewShippingStore creates a ShippingStore.
func NewShippingStore(db *sql.DB) *ShippingStore {
	return &ShippingStore{db: db}
}

const shippingColumns = `id, order_id, street, city, state, postal_code, country, status, tracking_number, carrier, created_at, updated_at`

// FindByID loads one shipping record.
func (s *ShippingStore) FindByID(ctx context.Context, id uuid.UUID) (domain.Shipping, error) {
	return s.findOne(ctx, `SELECT `+shippingColumns+` FROM shipping WHERE id = $1`, id.String())
}

// FindByOrderID loads the shipping record opened for an order.
func (s *ShippingStore) FindByOrderID(ctx context.Context, orderID uuid.UUID) (domain.Shipping, error) {
	return s.findOne(ctx, `SELECT `+shippingColumns+` FROM shipping WHERE order_id = $1`, orderID.String())
}

func (s *ShippingStore) findOne(ctx context.Context, query, arg string) (domain.Shipping, error) {
	var sh domain.Shipping
	var rawID, rawOrder, status string
	var tracking, carrier sql.NullString
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&rawID, &rawOrder,
		&sh.Address.Street, &sh.Address.City, &sh.Address.State, &sh.Address.PostalCode, &sh.Address.Country,
		&status, &tracking, &carrier,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Shipping{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Shipping{}, err
	}
	if sh.ID, err = uuid.Parse(rawID); err != nil {
		return domain.Shipping{}, err
	}
	if sh.OrderID, err = uuid.Parse(rawOrder); err != nil {
		return domain.Shipping{}, err
	}

	switch domain.ShippingStatus(status) {
	case domain.ShippingStatusPending:
		sh.State = domain.Pending{}
	case domain.ShippingStatusShipped:
		sh.State = domain.Shipped{TrackingNumber: tracking.String, Carrier: carrier.String}
	case domain.ShippingStatusDelivered:
		sh.State = domain.Delivered{TrackingNumber: tracking.String, Carrier: carrier.String}
	default:
		return domain.Shipping{}, fmt.Errorf("unknown shipping status %q for record %s", status, rawID)
	}
	return sh, nil
}

// Save upserts the shipping record.
func (s *ShippingStore) Save(ctx context.Context, sh domain.Shipping) (domain.Shipping, error) {
	var tracking, carrier sql.NullString
	switch st := sh.State.(type) {
	case domain.Shipped:
		tracking = sql.NullString{String: st.TrackingNumber, Valid: true}
		carrier = sql.NullString{String: st.Carrier, Valid: true}
	case domain.Delivered:
		tracking = sql.NullString{String: st.TrackingNumber, Valid: true}
		carrier = sql.NullString{String: st.Carrier, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shipping (id, order_id, street, city, state, postal_code, country, status, tracking_number, carrier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status,
			tracking_number = EXCLUDED.tracking_number,
			carrier = EXCLUDED.carrier,
			updated_at = EXCLUDED.updated_at`,
		sh.ID.String(), sh.OrderID.String(),
		sh.Address.Street, sh.Address.City, sh.Address.State, sh.Address.PostalCode, sh.Address.Country,
		string(sh.Status()), tracking, carrier,
		sh.CreatedAt, sh.UpdatedAt,
	)
	if err != nil {
		return domain.Shipping{}, err
	}
	return sh, nil
}
