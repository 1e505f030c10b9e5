package database

import (
	"fmt"
	"log"

	"github.com/akshaymhatre/receiptly-api/internal/config"
	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&entity.Customer{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedCustomers loads the static customer list into an empty customers
// table. A table that already has rows is left untouched so runtime
// additions survive restarts.
func SeedCustomers(db *gorm.DB, customers []entity.Customer) error {
	var count int64
	if err := db.Model(&entity.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Printf("Seeding %d customers...", len(customers))
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", customers[i].Name, err)
		}
	}
	return nil
}
