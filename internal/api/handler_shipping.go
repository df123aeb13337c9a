package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/internal/service"
	"github.com/contrasam/eyeflow/pkg/middleware"
)

// ShippingHandler handles shipping-related HTTP requests.
type ShippingHandler struct {
	shipping *service.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(shipping *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shipping: shipping}
}

// CreateShipping godoc
// @Summary      Open a pending shipping record for an order
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request  body      CreateShippingRequest  true  "Create shipping request"
// @Success      201      {object}  ShippingResponse
// @Router       /api/shipping [post]
func (h *ShippingHandler) CreateShipping(c *gin.Context) {
	log.Printf("[API] CreateShipping correlation_id=%s", middleware.GetCorrelationID(c))

	var req CreateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order_id"})
		return
	}

	sh, err := h.shipping.CreateShipping(c.Request.Context(), orderID, domain.ShippingAddress{
		Street:     req.Address.Street,
		City:       req.Address.City,
		State:      req.Address.State,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shippingResponse(sh))
}

// GetShipping godoc
// @Summary      Get a shipping record
// @Tags         shipping
// @Produce      json
// @Param        id   path      string  true  "Shipping ID"
// @Success      200  {object}  ShippingResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/shipping/{id} [get]
func (h *ShippingHandler) GetShipping(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	sh, err := h.shipping.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippingResponse(sh))
}

// GetShippingByOrder godoc
// @Summary      Get the shipping record opened for an order
// @Tags         shipping
// @Produce      json
// @Param        orderId  path      string  true  "Order ID"
// @Success      200      {object}  ShippingResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/shipping/order/{orderId} [get]
func (h *ShippingHandler) GetShippingByOrder(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return
	}
	sh, err := h.shipping.FindByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippingResponse(sh))
}

// ShipOrder godoc
// @Summary      Hand a pending shipment to a carrier
// @Description  Publishes order.shipped with the tracking information
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Shipping ID"
// @Param        request  body      ShipOrderRequest  true  "Tracking information"
// @Success      200      {object}  ShippingResponse
// @Failure      409      {object}  map[string]string
// @Router       /api/shipping/{id}/ship [post]
func (h *ShippingHandler) ShipOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req ShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sh, err := h.shipping.ShipOrder(c.Request.Context(), id, req.TrackingNumber, req.Carrier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippingResponse(sh))
}

// DeliverOrder godoc
// @Summary      Record carrier delivery of a shipment
// @Description  Publishes order.delivered and arms the auto-completion timer
// @Tags         shipping
// @Produce      json
// @Param        id   path      string  true  "Shipping ID"
// @Success      200  {object}  ShippingResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/shipping/{id}/deliver [post]
func (h *ShippingHandler) DeliverOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	sh, err := h.shipping.DeliverOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippingResponse(sh))
}
