package routes

import (
	"time"

	"github.com/alexacafe/pos-api/internal/config"
	"github.com/alexacafe/pos-api/internal/presentation/http/handler"
	"github.com/alexacafe/pos-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu      *handler.MenuHandler
	Price     *handler.PriceHandler
	Cart      *handler.CartHandler
	Checkout  *handler.CheckoutHandler
	Receipt   *handler.ReceiptHandler
	Order     *handler.OrderHandler
	Report    *handler.ReportHandler
	Stock     *handler.StockHandler
	Inventory *handler.InventoryHandler
	Printer   *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerMenuRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerReportRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerMenuRoutes(v1 *gin.RouterGroup, h *Handlers) {
	menu := v1.Group("/menu")
	{
		menu.GET("", h.Menu.Get)
		menu.POST("/categories", h.Menu.AddCategory)
		menu.DELETE("/categories/:category", h.Menu.RemoveCategory)
		menu.POST("/categories/:category/items", h.Menu.AddItem)
		menu.DELETE("/categories/:category/items/:item", h.Menu.RemoveItem)
		menu.PUT("/categories/:category/items/:item/image", h.Menu.SetItemImage)
	}

	v1.GET("/prices", h.Price.Get)
	v1.PUT("/prices", h.Price.Update)
	v1.PUT("/prices/table", h.Price.Replace)

	stock := v1.Group("/stock")
	{
		stock.GET("", h.Stock.Get)
		stock.PATCH("/:category/:item", h.Stock.Adjust)
		stock.PUT("/:category/:item", h.Stock.SetCount)
	}

	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.Get)
		inventory.POST("", h.Inventory.AddSupply)
		inventory.PATCH("/:name", h.Inventory.Adjust)
		inventory.DELETE("/:name", h.Inventory.RemoveSupply)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PATCH("/items/:id", h.Cart.UpdateQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveLine)
		cart.DELETE("", h.Cart.Clear)
	}

	v1.POST("/checkout", h.Checkout.Checkout)

	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.GET("/:orderNumber", h.Receipt.Get)
		receipts.PATCH("/:orderNumber/cash", h.Receipt.EditCashAmount)
		receipts.POST("/:orderNumber/items", h.Receipt.AddLineItems)
		receipts.DELETE("/:orderNumber/items/:index", h.Receipt.RemoveLineItem)
		receipts.POST("/:orderNumber/commit", h.Receipt.Commit)
		receipts.DELETE("/:orderNumber", h.Receipt.Delete)
	}

	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/financials", h.Order.Financials)
		orders.DELETE("/:orderNumber", h.Order.Delete)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/export", h.Report.Export)
		reports.POST("/import", h.Report.Import)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
		printer.POST("/receipts/:orderNumber", h.Printer.PrintReceipt)
	}
}
