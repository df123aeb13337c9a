package events

// OrderItem is the line-item shape carried inside order events.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	FrameCode string  `json:"frame_code"`
	LensCode  string  `json:"lens_code"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderPlaced is emitted when a new order is placed.
type OrderPlaced struct {
	Base
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
}

func (OrderPlaced) Kind() Kind { return KindOrderPlaced }

// OrderConfirmed is emitted when an order is confirmed.
type OrderConfirmed struct {
	Base
	OrderID string `json:"order_id"`
}

func (OrderConfirmed) Kind() Kind { return KindOrderConfirmed }

// OrderCanceled is emitted when an order is canceled.
type OrderCanceled struct {
	Base
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

func (OrderCanceled) Kind() Kind { return KindOrderCanceled }

// OrderAssembled is emitted when the assembly for an order completes.
type OrderAssembled struct {
	Base
	OrderID string `json:"order_id"`
}

func (OrderAssembled) Kind() Kind { return KindOrderAssembled }

// OrderShipped is emitted when an order leaves the warehouse.
type OrderShipped struct {
	Base
	OrderID        string `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

func (OrderShipped) Kind() Kind { return KindOrderShipped }

// OrderDelivered is emitted when the carrier reports delivery.
type OrderDelivered struct {
	Base
	OrderID string `json:"order_id"`
}

func (OrderDelivered) Kind() Kind { return KindOrderDelivered }

// OrderCompleted is emitted when an order reaches its terminal state.
type OrderCompleted struct {
	Base
	OrderID string `json:"order_id"`
}

func (OrderCompleted) Kind() Kind { return KindOrderCompleted }
