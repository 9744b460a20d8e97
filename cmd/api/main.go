package main

import (
	"context"
	"log"
	"os"

	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/application/state"
	"github.com/alexacafe/pos-api/internal/config"
	"github.com/alexacafe/pos-api/internal/domain/repository"
	"github.com/alexacafe/pos-api/internal/infrastructure/database"
	infraRepo "github.com/alexacafe/pos-api/internal/infrastructure/repository"
	"github.com/alexacafe/pos-api/internal/presentation/http/handler"
	"github.com/alexacafe/pos-api/internal/presentation/http/routes"
	"github.com/alexacafe/pos-api/pkg/printer"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Pick the snapshot store backend
	var kv repository.KVStore
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		kv = infraRepo.NewSnapshotStore(db)
	case "memory":
		log.Printf("Warning: using in-memory store, data is lost on restart")
		kv = infraRepo.NewMemoryStore()
	default:
		log.Fatalf("Unknown store driver %q (use postgres or memory)", cfg.Store.Driver)
	}

	// Load persisted shop state, falling back to seed data
	store := state.New(kv)
	store.Load(context.Background())

	// Initialize services
	priceService := service.NewPriceService(store)
	cartService := service.NewCartService(priceService)
	checkoutService := service.NewCheckoutService(store, cartService, cfg.Checkout.ProcessingDelay)
	receiptService := service.NewReceiptService(store)
	reportService := service.NewReportService(store)
	exportService := service.NewExportService(store, cfg.Shop.CurrencySymbol)
	orderService := service.NewOrderService(store)
	stockService := service.NewStockService(store)
	inventoryService := service.NewInventoryService(store)
	menuService := service.NewMenuService(store, priceService, stockService)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter, store, cfg.Shop.Name, cfg.Shop.CurrencySymbol,
		cfg.Printer.Type, cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Menu:      handler.NewMenuHandler(menuService),
		Price:     handler.NewPriceHandler(priceService),
		Cart:      handler.NewCartHandler(cartService),
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Order:     handler.NewOrderHandler(orderService),
		Report:    handler.NewReportHandler(reportService, exportService, receiptService),
		Stock:     handler.NewStockHandler(stockService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
