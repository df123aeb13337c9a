package api

import (
	"github.com/contrasam/eyeflow/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates and configures the Gin router.
func NewRouter(orders *OrderHandler, inventory *InventoryHandler, assemblies *AssemblyHandler, shipping *ShippingHandler) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(middleware.CorrelationID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")

	// Order routes
	apiGroup.POST("/orders", orders.CreateOrder)
	apiGroup.GET("/orders/:id", orders.GetOrder)
	apiGroup.POST("/orders/:id/confirm", orders.ConfirmOrder)
	apiGroup.POST("/orders/:id/cancel", orders.CancelOrder)
	apiGroup.POST("/orders/:id/complete", orders.CompleteOrder)

	// Inventory routes
	apiGroup.POST("/inventory", inventory.CreateItem)
	apiGroup.GET("/inventory/low-stock", inventory.ListLowStock)
	apiGroup.GET("/inventory/kind/:kind", inventory.ListByKind)
	apiGroup.POST("/inventory/frames/check-availability", inventory.CheckFrameAvailability)
	apiGroup.POST("/inventory/lenses/check-availability", inventory.CheckLensAvailability)
	apiGroup.POST("/inventory/frames/acquire", inventory.AcquireFrame)
	apiGroup.POST("/inventory/lenses/acquire", inventory.AcquireLens)
	apiGroup.POST("/inventory/frames/order-from-supplier", inventory.OrderFrameFromSupplier)
	apiGroup.POST("/inventory/lenses/order-from-supplier", inventory.OrderLensFromSupplier)
	apiGroup.GET("/inventory/supplier-orders/:id", inventory.GetSupplierOrder)
	apiGroup.GET("/inventory/:id", inventory.GetItem)
	apiGroup.POST("/inventory/:id/restock", inventory.Restock)

	// Assembly routes
	apiGroup.POST("/assemblies", assemblies.CreateAssembly)
	apiGroup.GET("/assemblies/order/:orderId", assemblies.GetAssemblyByOrder)
	apiGroup.GET("/assemblies/:id", assemblies.GetAssembly)
	apiGroup.POST("/assemblies/:id/start", assemblies.StartAssembly)
	apiGroup.POST("/assemblies/:id/complete", assemblies.CompleteAssembly)
	apiGroup.POST("/assemblies/:id/components", assemblies.AddComponent)
	apiGroup.POST("/assemblies/:id/components/:componentId/acquire", assemblies.AcquireComponent)

	// Shipping routes
	apiGroup.POST("/shipping", shipping.CreateShipping)
	apiGroup.GET("/shipping/order/:orderId", shipping.GetShippingByOrder)
	apiGroup.GET("/shipping/:id", shipping.GetShipping)
	apiGroup.POST("/shipping/:id/ship", shipping.ShipOrder)
	apiGroup.POST("/shipping/:id/deliver", shipping.DeliverOrder)

	return r
}
