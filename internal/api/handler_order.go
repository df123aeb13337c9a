package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/internal/service"
	"github.com/contrasam/eyeflow/pkg/middleware"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// respondError maps domain failures onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed " + name})
		return uuid.Nil, false
	}
	return id, true
}

// CreateOrder godoc
// @Summary      Place a new order
// @Description  Creates an order in PLACED status and publishes order.placed
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Create order request"
// @Success      201      {object}  OrderResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	log.Printf("[API] CreateOrder correlation_id=%s", middleware.GetCorrelationID(c))

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed customer_id"})
		return
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			FrameCode: it.FrameCode,
			LensCode:  it.LensCode,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), customerID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse(order))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  OrderResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

// ConfirmOrder godoc
// @Summary      Confirm a placed order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  OrderResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/orders/{id}/confirm [post]
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.ConfirmOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

// CancelOrder godoc
// @Summary      Cancel a non-terminal order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Order ID"
// @Param        request  body      CancelOrderRequest  true  "Cancellation reason"
// @Success      200      {object}  OrderResponse
// @Failure      409      {object}  map[string]string
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.CancelOrder(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

// CompleteOrder godoc
// @Summary      Complete a delivered order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  OrderResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.CompleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}
