package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/internal/service"
	"github.com/contrasam/eyeflow/pkg/middleware"
)

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// CreateItem godoc
// @Summary      Register a new inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      CreateInventoryRequest  true  "Create inventory request"
// @Success      201      {object}  InventoryResponse
// @Failure      400      {object}  map[string]string
// @Router       /api/inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	log.Printf("[API] CreateItem correlation_id=%s", middleware.GetCorrelationID(c))

	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.inventory.CreateItem(c.Request.Context(), domain.ItemKind(req.Kind), req.ItemCode, req.Description, req.InitialQuantity, req.MinimumStockLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inventoryResponse(inv))
}

// GetItem godoc
// @Summary      Get an inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Inventory ID"
// @Success      200  {object}  InventoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	inv, err := h.inventory.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventoryResponse(inv))
}

// ListByKind godoc
// @Summary      List inventory items of one kind
// @Tags         inventory
// @Produce      json
// @Param        kind  path      string  true  "FRAME or LENS"
// @Success      200   {array}   InventoryResponse
// @Router       /api/inventory/kind/{kind} [get]
func (h *InventoryHandler) ListByKind(c *gin.Context) {
	kind := domain.ItemKind(c.Param("kind"))
	if kind != domain.ItemKindFrame && kind != domain.ItemKindLens {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be FRAME or LENS"})
		return
	}
	items, err := h.inventory.FindByKind(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]InventoryResponse, len(items))
	for i, inv := range items {
		out[i] = inventoryResponse(inv)
	}
	c.JSON(http.StatusOK, out)
}

// ListLowStock godoc
// @Summary      List items at or below their minimum stock level
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  InventoryResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventory.FindLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]InventoryResponse, len(items))
	for i, inv := range items {
		out[i] = inventoryResponse(inv)
	}
	c.JSON(http.StatusOK, out)
}

// CheckFrameAvailability godoc
// @Summary      Check frame stock for a requested quantity
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      CheckAvailabilityRequest  true  "Availability check"
// @Success      200      {object}  AvailabilityResponse
// @Router       /api/inventory/frames/check-availability [post]
func (h *InventoryHandler) CheckFrameAvailability(c *gin.Context) {
	h.checkAvailability(c, h.inventory.CheckFrameAvailability)
}

// CheckLensAvailability godoc
// @Summary      Check lens stock for a requested quantity
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      CheckAvailabilityRequest  true  "Availability check"
// @Success      200      {object}  AvailabilityResponse
// @Router       /api/inventory/lenses/check-availability [post]
func (h *InventoryHandler) CheckLensAvailability(c *gin.Context) {
	h.checkAvailability(c, h.inventory.CheckLensAvailability)
}

func (h *InventoryHandler) checkAvailability(c *gin.Context, check func(ctx context.Context, code string, qty int) (bool, error)) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	available, err := check(c.Request.Context(), req.ItemCode, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{
		ItemCode:          req.ItemCode,
		RequestedQuantity: req.Quantity,
		Available:         available,
	})
}

// AcquireFrame godoc
// @Summary      Take frames out of stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      AcquireItemRequest  true  "Acquisition request"
// @Success      200      {object}  AcquireResponse
// @Failure      422      {object}  AcquireResponse
// @Router       /api/inventory/frames/acquire [post]
func (h *InventoryHandler) AcquireFrame(c *gin.Context) {
	h.acquire(c, h.inventory.AcquireFrame)
}

// AcquireLens godoc
// @Summary      Take lenses out of stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      AcquireItemRequest  true  "Acquisition request"
// @Success      200      {object}  AcquireResponse
// @Failure      422      {object}  AcquireResponse
// @Router       /api/inventory/lenses/acquire [post]
func (h *InventoryHandler) AcquireLens(c *gin.Context) {
	h.acquire(c, h.inventory.AcquireLens)
}

func (h *InventoryHandler) acquire(c *gin.Context, acquire func(ctx context.Context, code string, qty int) (bool, error)) {
	var req AcquireItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, err := acquire(c.Request.Context(), req.ItemCode, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := AcquireResponse{ItemCode: req.ItemCode, Quantity: req.Quantity, Acquired: ok}
	if !ok {
		// Insufficient stock is a business outcome, not a server fault.
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Restock godoc
// @Summary      Add stock to an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Inventory ID"
// @Param        request  body      RestockRequest  true  "Restock request"
// @Success      200      {object}  InventoryResponse
// @Router       /api/inventory/{id}/restock [post]
func (h *InventoryHandler) Restock(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inv, err := h.inventory.RestockInventory(c.Request.Context(), id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventoryResponse(inv))
}

// OrderFrameFromSupplier godoc
// @Summary      Place a supplier order for frames
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      OrderFromSupplierRequest  true  "Supplier order request"
// @Success      201      {object}  SupplierOrderResponse
// @Router       /api/inventory/frames/order-from-supplier [post]
func (h *InventoryHandler) OrderFrameFromSupplier(c *gin.Context) {
	h.orderFromSupplier(c, h.inventory.OrderFrameWithSupplier)
}

// OrderLensFromSupplier godoc
// @Summary      Place a supplier order for lenses
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      OrderFromSupplierRequest  true  "Supplier order request"
// @Success      201      {object}  SupplierOrderResponse
// @Router       /api/inventory/lenses/order-from-supplier [post]
func (h *InventoryHandler) OrderLensFromSupplier(c *gin.Context) {
	h.orderFromSupplier(c, h.inventory.OrderLensWithSupplier)
}

func (h *InventoryHandler) orderFromSupplier(c *gin.Context, order func(ctx context.Context, code string, qty int, supplierID string) (*domain.SupplierOrder, error)) {
	var req OrderFromSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	so, err := order(c.Request.Context(), req.ItemCode, req.Quantity, req.SupplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplierOrderResponse(so))
}

// GetSupplierOrder godoc
// @Summary      Get a supplier order
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Supplier order ID"
// @Success      200  {object}  SupplierOrderResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/inventory/supplier-orders/{id} [get]
func (h *InventoryHandler) GetSupplierOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	so, err := h.inventory.FindSupplierOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplierOrderResponse(so))
}
