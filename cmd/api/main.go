package main

import (
	"log"

	"github.com/akshaymhatre/receiptly-api/internal/application/service"
	"github.com/akshaymhatre/receiptly-api/internal/config"
	domainRepo "github.com/akshaymhatre/receiptly-api/internal/domain/repository"
	"github.com/akshaymhatre/receiptly-api/internal/infrastructure/database"
	"github.com/akshaymhatre/receiptly-api/internal/infrastructure/repository"
	"github.com/akshaymhatre/receiptly-api/internal/infrastructure/staticlist"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/handler"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/routes"
	"github.com/akshaymhatre/receiptly-api/pkg/whatsapp"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the externally supplied customer list
	customers, err := staticlist.Load(cfg.Customers.File)
	if err != nil {
		log.Fatalf("Failed to load customer list: %v", err)
	}
	log.Printf("Loaded %d customers from %s", len(customers), cfg.Customers.File)

	// Pick the customer store: Postgres when configured, otherwise the
	// in-memory list
	var customerRepo domainRepo.CustomerRepository
	if cfg.Database.Enabled {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := database.SeedCustomers(db, customers); err != nil {
			log.Fatalf("Failed to seed customers: %v", err)
		}
		customerRepo = repository.NewCustomerRepository(db)
	} else {
		customerRepo = repository.NewMemoryCustomerRepository(customers)
	}

	// Initialize services
	builder := whatsapp.NewBuilder(cfg.WhatsApp.Domain, cfg.WhatsApp.CountryCode, cfg.WhatsApp.Currency)
	engine := service.NewSuggestionEngine(customerRepo, cfg.Customers.SuggestLimit)
	receiptService := service.NewReceiptService(builder)
	formService := service.NewFormService(engine, receiptService, cfg.Session.TTL)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Customer: handler.NewCustomerHandler(customerService, engine),
		Form:     handler.NewFormHandler(formService),
		Receipt:  handler.NewReceiptHandler(receiptService),
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
