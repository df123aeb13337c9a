package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
)

type inventorySeed struct {
	kind        domain.ItemKind
	itemCode    string
	description string
	quantity    int
	minimum     int
}

var catalog = []inventorySeed{
	{domain.ItemKindFrame, "F001", "Classic Round Frame", 50, 10},
	{domain.ItemKindFrame, "F002", "Modern Square Frame", 40, 8},
	{domain.ItemKindFrame, "F003", "Vintage Oval Frame", 30, 5},
	{domain.ItemKindFrame, "F004", "Sport Wrap Frame", 25, 5},
	{domain.ItemKindFrame, "F005", "Luxury Designer Frame", 15, 3},
	{domain.ItemKindLens, "L001", "Standard Single Vision Lens", 100, 20},
	{domain.ItemKindLens, "L002", "Progressive Lens", 80, 15},
	{domain.ItemKindLens, "L003", "Bifocal Lens", 60, 12},
	{domain.ItemKindLens, "L004", "Blue Light Filtering Lens", 70, 15},
	{domain.ItemKindLens, "L005", "Photochromic Lens", 50, 10},
	{domain.ItemKindLens, "L006", "Polarized Sunglasses Lens", 40, 8},
}

// Run loads the sample catalog and a few starter orders. It is a no-op
// when the inventory already contains data, so restarting the service
// does not duplicate rows.
func Run(ctx context.Context, inventory domain.InventoryRepository, orders domain.OrderRepository, shipping domain.ShippingRepository) error {
	count, err := inventory.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing inventory: %w", err)
	}
	if count > 0 {
		log.Println("[Seed] Database already contains data, skipping")
		return nil
	}

	log.Println("[Seed] Seeding sample data")
	if err := seedInventory(ctx, inventory); err != nil {
		return err
	}
	if err := seedOrders(ctx, orders, shipping); err != nil {
		return err
	}
	log.Println("[Seed] Sample data seeding completed")
	return nil
}

func seedInventory(ctx context.Context, inventory domain.InventoryRepository) error {
	for _, s := range catalog {
		inv, err := domain.NewInventory(s.kind, s.itemCode, s.description, s.quantity, s.minimum)
		if err != nil {
			return fmt.Errorf("failed to build seed item %s: %w", s.itemCode, err)
		}
		if _, err := inventory.Save(ctx, inv); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", s.itemCode, err)
		}
	}
	log.Printf("[Seed] Seeded %d inventory items", len(catalog))
	return nil
}

func seedOrders(ctx context.Context, orders domain.OrderRepository, shipping domain.ShippingRepository) error {
	samples := [][]domain.OrderItem{
		{
			{ProductID: "EYEGLASSES-001", FrameCode: "F001", LensCode: "L001", Quantity: 1, Price: 199.99},
		},
		{
			{ProductID: "EYEGLASSES-002", FrameCode: "F002", LensCode: "L004", Quantity: 1, Price: 249.99},
			{ProductID: "EYEGLASSES-003", FrameCode: "F003", LensCode: "L002", Quantity: 1, Price: 299.99},
		},
		{
			{ProductID: "SUNGLASSES-001", FrameCode: "F005", LensCode: "L006", Quantity: 1, Price: 349.99},
		},
	}

	for i, items := range samples {
		order := domain.PlaceOrder(uuid.New(), items)
		if _, err := orders.Save(ctx, order); err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
		// The first sample order gets a pending shipment too.
		if i == 0 {
			sh := domain.NewShipping(order.ID, domain.ShippingAddress{
				Street:     "123 Main St",
				City:       "Eyeville",
				State:      "CA",
				PostalCode: "90210",
				Country:    "USA",
			})
			if _, err := shipping.Save(ctx, sh); err != nil {
				return fmt.Errorf("failed to seed shipping: %w", err)
			}
		}
	}
	log.Printf("[Seed] Seeded %d sample orders", len(samples))
	return nil
}
