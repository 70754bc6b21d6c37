package database

import (
	"courierhub/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL, falling back to a local
// sqlite file when DB_HOST is not set (local development).
func ConnectDb() {
	var db *gorm.DB
	var err error

	if os.Getenv("DB_HOST") == "" {
		dbName := os.Getenv("DB_NAME")
		if dbName == "" {
			dbName = "courierhub.db"
		}
		db, err = gorm.Open(sqlite.Open(dbName), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
	} else {
		// Build the PostgreSQL connection string
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}

		// Set up connection pooling
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database instance: %v", err)
		}

		sqlDB.SetMaxOpenConns(10)   // Maximum open connections
		sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
		sqlDB.SetConnMaxLifetime(0) // No timeout
	}

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.VehicleProfile{},
		&models.Document{},
		&models.JobPosting{},
		&models.JobAssignment{},
		&models.CompanyVerification{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
