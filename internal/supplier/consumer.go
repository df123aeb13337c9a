package supplier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/pkg/rabbitmq"
)

const (
	queueName  = "supplier.deliveries"
	dlqName    = "supplier.deliveries.dlq"
	routingKey = "supplier.delivery"
)

// DeliveryMessage is the wire shape suppliers send when a replenishment
// order arrives at the warehouse.
type DeliveryMessage struct {
	SupplierOrderID string `json:"supplier_order_id"`
}

// InventoryOps is the slice of the inventory service the consumer uses.
type InventoryOps interface {
	FindSupplierOrder(ctx context.Context, id uuid.UUID) (*domain.SupplierOrder, error)
	MarkSupplierOrderReceived(ctx context.Context, id uuid.UUID) (*domain.SupplierOrder, error)
	RestockByItemCode(ctx context.Context, itemCode string, quantity int) (*domain.Inventory, error)
}

// Consumer receives supplier delivery messages, marks the matching
// supplier order received, and restocks the delivered quantity.
type Consumer struct {
	inventory InventoryOps
}

// NewConsumer creates a Consumer.
func NewConsumer(inventory InventoryOps) *Consumer {
	return &Consumer{inventory: inventory}
}

// Start binds the consumer to the supplier deliveries queue.
func (c *Consumer) Start(conn *rabbitmq.Connection) error {
	return rabbitmq.SetupConsumer(conn, rabbitmq.ConsumerConfig{
		QueueName:    queueName,
		DLQName:      dlqName,
		RoutingKeys:  []string{routingKey},
		ConsumerName: "supplier-consumer",
	}, c.HandleMessage)
}

// HandleMessage processes one delivery. A supplier order that was already
// received is treated as a duplicate delivery and acked without restocking
// again.
func (c *Consumer) HandleMessage(d amqp.Delivery) error {
	var msg DeliveryMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		return fmt.Errorf("malformed delivery message: %w", err)
	}
	id, err := uuid.Parse(msg.SupplierOrderID)
	if err != nil {
		return fmt.Errorf("malformed supplier order id %q: %w", msg.SupplierOrderID, err)
	}

	ctx := context.Background()
	so, err := c.inventory.FindSupplierOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("looking up supplier order %s: %w", id, err)
	}
	if so.Status == domain.SupplierOrderStatusReceived {
		log.Printf("[Supplier] Duplicate delivery for order=%s, ignoring", id)
		return nil
	}

	if _, err := c.inventory.MarkSupplierOrderReceived(ctx, id); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			log.Printf("[Supplier] Order=%s not receivable (%v), ignoring", id, err)
			return nil
		}
		return fmt.Errorf("marking supplier order %s received: %w", id, err)
	}

	if _, err := c.inventory.RestockByItemCode(ctx, so.ItemCode, so.Quantity); err != nil {
		return fmt.Errorf("restocking %s by %d: %w", so.ItemCode, so.Quantity, err)
	}

	log.Printf("[Supplier] Delivery received order=%s code=%s quantity=%d", id, so.ItemCode, so.Quantity)
	return nil
}
