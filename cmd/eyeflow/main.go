package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contrasam/eyeflow/internal/api"
	"github.com/contrasam/eyeflow/internal/bus"
	"github.com/contrasam/eyeflow/internal/choreography"
	"github.com/contrasam/eyeflow/internal/domain"
	"github.com/contrasam/eyeflow/internal/notify"
	"github.com/contrasam/eyeflow/internal/relay"
	"github.com/contrasam/eyeflow/internal/seed"
	"github.com/contrasam/eyeflow/internal/service"
	"github.com/contrasam/eyeflow/internal/storage/memory"
	storagepg "github.com/contrasam/eyeflow/internal/storage/postgres"
	"github.com/contrasam/eyeflow/internal/supplier"
	"github.com/contrasam/eyeflow/pkg/config"
	"github.com/contrasam/eyeflow/pkg/postgres"
	"github.com/contrasam/eyeflow/pkg/rabbitmq"

	"github.com/google/uuid"
)

type stores struct {
	orders         domain.OrderRepository
	inventory      domain.InventoryRepository
	supplierOrders domain.SupplierOrderRepository
	assemblies     domain.AssemblyRepository
	shipping       domain.ShippingRepository
}

// @title           Eyeflow Order Fulfillment API
// @version         1.0
// @description     Event-driven eyewear order fulfillment: orders, inventory, assembly and shipping coordinated over an in-process event bus, mirrored to RabbitMQ.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[Eyeflow] Starting eyeflow service...")

	cfg := config.Load()

	st, cleanup := openStores(cfg)
	defer cleanup()

	eventBus := bus.New()
	defer eventBus.Close()

	orderService := service.NewOrderService(st.orders, eventBus)
	inventoryService := service.NewInventoryService(st.inventory, st.supplierOrders, eventBus)
	assemblyService := service.NewAssemblyService(st.assemblies, eventBus)
	shippingService := service.NewShippingService(st.shipping, eventBus)

	scheduler := choreography.NewCompletionScheduler(cfg.CompletionGrace, func(ctx context.Context, orderID uuid.UUID) error {
		_, err := orderService.CompleteOrder(ctx, orderID)
		return err
	})
	defer scheduler.Stop()

	choreography.NewOrderHandler(inventoryService, assemblyService, cfg.FrameSupplierID, cfg.LensSupplierID).Register(eventBus)
	choreography.NewReplenishmentHandler(inventoryService, cfg.ReorderBuffer, cfg.ReorderThreshold, cfg.FrameSupplierID, cfg.LensSupplierID).Register(eventBus)
	choreography.NewShippingHandler(notify.NewLogNotifier(), scheduler).Register(eventBus)

	if cfg.RabbitMQURL != "" {
		rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("[Eyeflow] Failed to connect to RabbitMQ: %v", err)
		}
		defer rmqConn.Close()

		publisher, err := rabbitmq.NewPublisher(rmqConn)
		if err != nil {
			log.Fatalf("[Eyeflow] Failed to create publisher: %v", err)
		}
		defer publisher.Close()

		relay.New(publisher).Register(eventBus)

		if err := supplier.NewConsumer(inventoryService).Start(rmqConn); err != nil {
			log.Fatalf("[Eyeflow] Failed to start supplier consumer: %v", err)
		}
	} else {
		log.Println("[Eyeflow] RABBITMQ_URL not set, broker relay and supplier consumer disabled")
	}

	if cfg.SeedData {
		if err := seed.Run(context.Background(), st.inventory, st.orders, st.shipping); err != nil {
			log.Fatalf("[Eyeflow] Failed to seed sample data: %v", err)
		}
	}

	router := api.NewRouter(
		api.NewOrderHandler(orderService),
		api.NewInventoryHandler(inventoryService),
		api.NewAssemblyHandler(assemblyService),
		api.NewShippingHandler(shippingService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("[Eyeflow] Listening on port %s", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Eyeflow] Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Eyeflow] Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Eyeflow] Server forced to shutdown: %v", err)
	}
	log.Println("[Eyeflow] Server exited gracefully")
}

// openStores builds the repository set for the configured storage driver.
// The returned cleanup closes the database connection when one was opened.
func openStores(cfg *config.Config) (stores, func()) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[Eyeflow] Failed to connect to PostgreSQL: %v", err)
		}
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("[Eyeflow] Failed to run migrations: %v", err)
		}
		return stores{
			orders:         storagepg.NewOrderStore(db),
			inventory:      storagepg.NewInventoryStore(db),
			supplierOrders: storagepg.NewSupplierOrderStore(db),
			assemblies:     storagepg.NewAssemblyStore(db),
			shipping:       storagepg.NewShippingStore(db),
		}, func() { db.Close() }
	case "memory":
		log.Println("[Eyeflow] Using in-memory storage")
		return stores{
			orders:         memory.NewOrderStore(),
			inventory:      memory.NewInventoryStore(),
			supplierOrders: memory.NewSupplierOrderStore(),
			assemblies:     memory.NewAssemblyStore(),
			shipping:       memory.NewShippingStore(),
		}, func() {}
	default:
		log.Fatalf("[Eyeflow] Unknown storage driver %q", cfg.StorageDriver)
		return stores{}, nil
	}
}
