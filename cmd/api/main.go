package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/skhirtladze/pos-api/internal/application/service"
	"github.com/skhirtladze/pos-api/internal/config"
	"github.com/skhirtladze/pos-api/internal/infrastructure/database"
	"github.com/skhirtladze/pos-api/internal/infrastructure/repository"
	"github.com/skhirtladze/pos-api/internal/presentation/http/handler"
	"github.com/skhirtladze/pos-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(db)
	productRepo := repository.NewProductRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	salesRepo := repository.NewSalesRepository(db)

	// Initialize services
	receiptService := service.NewReceiptService(receiptRepo, productRepo)
	productService := service.NewProductService(productRepo, unitRepo)
	unitService := service.NewUnitService(unitRepo)
	salesService := service.NewSalesService(salesRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Receipt: handler.NewReceiptHandler(receiptService),
		Product: handler.NewProductHandler(productService),
		Unit:    handler.NewUnitHandler(unitService),
		Sales:   handler.NewSalesHandler(salesService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
