package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skhirtladze/pos-api/internal/config"
	"github.com/skhirtladze/pos-api/internal/presentation/http/handler"
	"github.com/skhirtladze/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt *handler.ReceiptHandler
	Product *handler.ProductHandler
	Unit    *handler.UnitHandler
	Sales   *handler.SalesHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

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
		registerReceiptRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerUnitRoutes(v1, h)

		v1.GET("/sales", h.Sales.GetSummary)
	}

	return router
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.POST("", h.Receipt.Open)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("/:id/items", h.Receipt.AddItem)
		receipts.PATCH("/:id", h.Receipt.Close)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.GET("/:id/total", h.Receipt.GetTotal)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id", h.Product.UpdatePrice)
	}
}

func registerUnitRoutes(v1 *gin.RouterGroup, h *Handlers) {
	units := v1.Group("/units")
	{
		units.POST("", h.Unit.Create)
		units.GET("", h.Unit.List)
		units.GET("/:id", h.Unit.Get)
	}
}
