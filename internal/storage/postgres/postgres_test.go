package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
	})
	return db, mock
}

func TestOrderStore_SaveWritesOrderAndItems(t *testing.T) {
	db, mock := newMock(t)
	orders := NewOrderStore(db)

	o := domain.PlaceOrder(uuid.New(), []domain.OrderItem{
		{ProductID: "p1", FrameCode: "F001", LensCode: "L001", Quantity: 2, Price: 99.50},
	})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID.String(), o.CustomerID.String(), "PLACED", o.CreatedAt, o.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM order_items").
		WithArgs(o.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(o.ID.String(), 0, "p1", "F001", "L001", 2, 99.50).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if _, err := orders.Save(context.Background(), o); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestOrderStore_FindByIDRebuildsItems(t *testing.T) {
	db, mock := newMock(t)
	orders := NewOrderStore(db)

	id := uuid.New()
	customer := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT id, customer_id, status, created_at, updated_at FROM orders").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "status", "created_at", "updated_at"}).
			AddRow(id.String(), customer.String(), "CONFIRMED", now, now))
	mock.ExpectQuery("SELECT product_id, frame_code, lens_code, quantity, price FROM order_items").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "frame_code", "lens_code", "quantity", "price"}).
			AddRow("p1", "F001", "L001", 1, 149.90).
			AddRow("p2", "F002", "L002", 2, 89.00))

	o, err := orders.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if o.Status != domain.OrderStatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", o.Status)
	}
	if len(o.Items) != 2 || o.Items[1].FrameCode != "F002" {
		t.Errorf("unexpected items: %+v", o.Items)
	}
}

func TestInventoryStore_FindByItemCodeMissingIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	inventory := NewInventoryStore(db)

	mock.ExpectQuery("SELECT (.+) FROM inventory WHERE item_code").
		WithArgs("F404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := inventory.FindByItemCode(context.Background(), "F404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInventoryStore_FindLowStock(t *testing.T) {
	db, mock := newMock(t)
	inventory := NewInventoryStore(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM inventory WHERE quantity <= minimum_stock_level").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "item_code", "description", "quantity", "minimum_stock_level", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), "FRAME", "F001", "Aviator frame", 5, 10, now, now))

	low, err := inventory.FindLowStock(context.Background())
	if err != nil {
		t.Fatalf("FindLowStock: %v", err)
	}
	if len(low) != 1 || low[0].ItemCode != "F001" || !low[0].LowOnStock() {
		t.Errorf("unexpected result: %+v", low)
	}
}

func TestSupplierOrderStore_SaveUpserts(t *testing.T) {
	db, mock := newMock(t)
	supplierOrders := NewSupplierOrderStore(db)

	so := domain.NewSupplierOrder(domain.ItemKindLens, "L002", 39, "default-lens-supplier")

	mock.ExpectExec("INSERT INTO supplier_orders").
		WithArgs(so.ID.String(), "LENS", "L002", 39, "default-lens-supplier", "ORDERED", so.OrderedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := supplierOrders.Save(context.Background(), so); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestAssemblyStore_FindByOrderID(t *testing.T) {
	db, mock := newMock(t)
	assemblies := NewAssemblyStore(db)

	id := uuid.New()
	orderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT id, order_id, status, created_at, updated_at FROM assemblies WHERE order_id").
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status", "created_at", "updated_at"}).
			AddRow(id.String(), orderID.String(), "IN_PROGRESS", now, now))
	mock.ExpectQuery("SELECT component_id, kind, description, acquired FROM assembly_components").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"component_id", "kind", "description", "acquired"}).
			AddRow("frame-F001", "FRAME", "F001", true).
			AddRow("lens-L001", "LENS", "L001", false))

	a, err := assemblies.FindByOrderID(context.Background(), orderID)
	if err != nil {
		t.Fatalf("FindByOrderID: %v", err)
	}
	if a.Status != domain.AssemblyStatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", a.Status)
	}
	if len(a.Components) != 2 || a.Components[0].Acquired == a.Components[1].Acquired {
		t.Errorf("unexpected components: %+v", a.Components)
	}
}

func TestShippingStore_FindRebuildsShippedVariant(t *testing.T) {
	db, mock := newMock(t)
	shipping := NewShippingStore(db)

	id := uuid.New()
	orderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM shipping WHERE id").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "street", "city", "state", "postal_code", "country", "status", "tracking_number", "carrier", "created_at", "updated_at"}).
			AddRow(id.String(), orderID.String(), "1 Main St", "Lyon", "", "69002", "FR", "SHIPPED", "TRK-1", "UPS", now, now))

	sh, err := shipping.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	state, ok := sh.State.(domain.Shipped)
	if !ok {
		t.Fatalf("expected Shipped state, got %T", sh.State)
	}
	if state.TrackingNumber != "TRK-1" || state.Carrier != "UPS" {
		t.Errorf("unexpected tracking: %+v", state)
	}
}

func TestShippingStore_SavePendingHasNullTracking(t *testing.T) {
	db, mock := newMock(t)
	shipping := NewShippingStore(db)

	sh := domain.NewShipping(uuid.New(), domain.ShippingAddress{Street: "1 Main St", City: "Lyon", PostalCode: "69002", Country: "FR"})

	mock.ExpectExec("INSERT INTO shipping").
		WithArgs(sh.ID.String(), sh.OrderID.String(), "1 Main St", "Lyon", "", "69002", "FR", "PENDING", nil, nil, sh.CreatedAt, sh.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := shipping.Save(context.Background(), sh); err != nil {
		t.Fatalf("Save: %v", err)
	}
}
