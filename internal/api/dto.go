package api

import (
	"time"

	"github.com/contrasam/eyeflow/internal/domain"
)

type CreateOrderRequest struct {
	CustomerID string                   `json:"customer_id" binding:"required,uuid"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	FrameCode string  `json:"frame_code" binding:"required"`
	LensCode  string  `json:"lens_code" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CreateInventoryRequest struct {
	Kind              string `json:"kind" binding:"required,oneof=FRAME LENS"`
	ItemCode          string `json:"item_code" binding:"required"`
	Description       string `json:"description" binding:"required"`
	InitialQuantity   int    `json:"initial_quantity" binding:"min=0"`
	MinimumStockLevel int    `json:"minimum_stock_level" binding:"min=0"`
}

type CheckAvailabilityRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type AcquireItemRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type OrderFromSupplierRequest struct {
	ItemCode   string `json:"item_code" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	SupplierID string `json:"supplier_id" binding:"required"`
}

type CreateAssemblyRequest struct {
	OrderID    string                   `json:"order_id" binding:"required,uuid"`
	Components []AssemblyComponentInput `json:"components" binding:"dive"`
}

type AssemblyComponentInput struct {
	ID          string `json:"id" binding:"required"`
	Kind        string `json:"kind" binding:"required,oneof=FRAME LENS"`
	Description string `json:"description"`
}

type CreateShippingRequest struct {
	OrderID string              `json:"order_id" binding:"required,uuid"`
	Address ShippingAddressBody `json:"address" binding:"required"`
}

type ShippingAddressBody struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	Carrier        string `json:"carrier" binding:"required"`
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	FrameCode string  `json:"frame_code"`
	LensCode  string  `json:"lens_code"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func orderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			FrameCode: it.FrameCode,
			LensCode:  it.LensCode,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return OrderResponse{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Status:     string(o.Status),
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

type InventoryResponse struct {
	ID                string `json:"id"`
	Kind              string `json:"kind"`
	ItemCode          string `json:"item_code"`
	Description       string `json:"description"`
	Quantity          int    `json:"quantity"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
	LowOnStock        bool   `json:"low_on_stock"`
}

func inventoryResponse(inv *domain.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:                inv.ID.String(),
		Kind:              string(inv.Kind),
		ItemCode:          inv.ItemCode,
		Description:       inv.Description,
		Quantity:          inv.Quantity,
		MinimumStockLevel: inv.MinimumStockLevel,
		LowOnStock:        inv.LowOnStock(),
	}
}

type AvailabilityResponse struct {
	ItemCode          string `json:"item_code"`
	RequestedQuantity int    `json:"requested_quantity"`
	Available         bool   `json:"available"`
}

type AcquireResponse struct {
	ItemCode string `json:"item_code"`
	Quantity int    `json:"quantity"`
	Acquired bool   `json:"acquired"`
}

type SupplierOrderResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	ItemCode   string    `json:"item_code"`
	Quantity   int       `json:"quantity"`
	SupplierID string    `json:"supplier_id"`
	Status     string    `json:"status"`
	OrderedAt  time.Time `json:"ordered_at"`
}

func supplierOrderResponse(so *domain.SupplierOrder) SupplierOrderResponse {
	return SupplierOrderResponse{
		ID:         so.ID.String(),
		Kind:       string(so.Kind),
		ItemCode:   so.ItemCode,
		Quantity:   so.Quantity,
		SupplierID: so.SupplierID,
		Status:     string(so.Status),
		OrderedAt:  so.OrderedAt,
	}
}

type AssemblyComponentResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Acquired    bool   `json:"acquired"`
}

type AssemblyResponse struct {
	ID         string                      `json:"id"`
	OrderID    string                      `json:"order_id"`
	Status     string                      `json:"status"`
	Components []AssemblyComponentResponse `json:"components"`
}

func assemblyResponse(a *domain.Assembly) AssemblyResponse {
	components := make([]AssemblyComponentResponse, len(a.Components))
	for i, c := range a.Components {
		components[i] = AssemblyComponentResponse{
			ID:          c.ID,
			Kind:        string(c.Kind),
			Description: c.Description,
			Acquired:    c.Acquired,
		}
	}
	return AssemblyResponse{
		ID:         a.ID.String(),
		OrderID:    a.OrderID.String(),
		Status:     string(a.Status),
		Components: components,
	}
}

type ShippingResponse struct {
	ID             string              `json:"id"`
	OrderID        string              `json:"order_id"`
	Address        ShippingAddressBody `json:"address"`
	Status         string              `json:"status"`
	TrackingNumber string              `json:"tracking_number,omitempty"`
	Carrier        string              `json:"carrier,omitempty"`
}

func shippingResponse(sh domain.Shipping) ShippingResponse {
	resp := ShippingResponse{
		ID:      sh.ID.String(),
		OrderID: sh.OrderID.String(),
		Address: ShippingAddressBody{
			Street:     sh.Address.Street,
			City:       sh.Address.City,
			State:      sh.Address.State,
			PostalCode: sh.Address.PostalCode,
			Country:    sh.Address.Country,
		},
		Status: string(sh.Status()),
	}
	switch st := sh.State.(type) {
	case domain.Shipped:
		resp.TrackingNumber = st.TrackingNumber
		resp.Carrier = st.Carrier
	case domain.Delivered:
		resp.TrackingNumber = st.TrackingNumber
		resp.Carrier = st.Carrier
	}
	return resp
}
