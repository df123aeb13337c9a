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

// AssemblyHandler handles assembly-related HTTP requests.
type AssemblyHandler struct {
	assemblies *service.AssemblyService
}

// NewAssemblyHandler creates a new AssemblyHandler.
func NewAssemblyHandler(assemblies *service.AssemblyService) *AssemblyHandler {
	return &AssemblyHandler{assemblies: assemblies}
}

// CreateAssembly godoc
// @Summary      Open an assembly for an order
// @Tags         assemblies
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAssemblyRequest  true  "Create assembly request"
// @Success      201      {object}  AssemblyResponse
// @Router       /api/assemblies [post]
func (h *AssemblyHandler) CreateAssembly(c *gin.Context) {
	log.Printf("[API] CreateAssembly correlation_id=%s", middleware.GetCorrelationID(c))

	var req CreateAssemblyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order_id"})
		return
	}

	components := make([]domain.AssemblyComponent, len(req.Components))
	for i, in := range req.Components {
		components[i] = domain.AssemblyComponent{
			ID:          in.ID,
			Kind:        domain.ItemKind(in.Kind),
			Description: in.Description,
		}
	}

	a, err := h.assemblies.CreateAssembly(c.Request.Context(), orderID, components)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assemblyResponse(a))
}

// GetAssembly godoc
// @Summary      Get an assembly
// @Tags         assemblies
// @Produce      json
// @Param        id   path      string  true  "Assembly ID"
// @Success      200  {object}  AssemblyResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/assemblies/{id} [get]
func (h *AssemblyHandler) GetAssembly(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.assemblies.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}

// GetAssemblyByOrder godoc
// @Summary      Get the assembly opened for an order
// @Tags         assemblies
// @Produce      json
// @Param        orderId  path      string  true  "Order ID"
// @Success      200      {object}  AssemblyResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/assemblies/order/{orderId} [get]
func (h *AssemblyHandler) GetAssemblyByOrder(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderId")
	if !ok {
		return
	}
	a, err := h.assemblies.FindByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}

// StartAssembly godoc
// @Summary      Start a pending assembly
// @Tags         assemblies
// @Produce      json
// @Param        id   path      string  true  "Assembly ID"
// @Success      200  {object}  AssemblyResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/assemblies/{id}/start [post]
func (h *AssemblyHandler) StartAssembly(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.assemblies.StartAssembly(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}

// CompleteAssembly godoc
// @Summary      Complete a running assembly
// @Description  Requires every component acquired; publishes order.assembled
// @Tags         assemblies
// @Produce      json
// @Param        id   path      string  true  "Assembly ID"
// @Success      200  {object}  AssemblyResponse
// @Failure      409  {object}  map[string]string
// @Router       /api/assemblies/{id}/complete [post]
func (h *AssemblyHandler) CompleteAssembly(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.assemblies.CompleteAssembly(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}

// AddComponent godoc
// @Summary      Attach a component to an assembly
// @Tags         assemblies
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Assembly ID"
// @Param        request  body      AssemblyComponentInput  true  "Component"
// @Success      200      {object}  AssemblyResponse
// @Router       /api/assemblies/{id}/components [post]
func (h *AssemblyHandler) AddComponent(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req AssemblyComponentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.assemblies.AddComponent(c.Request.Context(), id, domain.AssemblyComponent{
		ID:          req.ID,
		Kind:        domain.ItemKind(req.Kind),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}

// AcquireComponent godoc
// @Summary      Mark a component acquired
// @Tags         assemblies
// @Produce      json
// @Param        id           path      string  true  "Assembly ID"
// @Param        componentId  path      string  true  "Component ID"
// @Success      200          {object}  AssemblyResponse
// @Failure      404          {object}  map[string]string
// @Router       /api/assemblies/{id}/components/{componentId}/acquire [post]
func (h *AssemblyHandler) AcquireComponent(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	a, err := h.assemblies.AcquireComponent(c.Request.Context(), id, c.Param("componentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assemblyResponse(a))
}
