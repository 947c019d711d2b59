package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/Campus-Job-Board/internal/models"
)

// Connect opens the Postgres connection and migrates the schema. Used only
// when a DATABASE_URL is configured; the default deployment runs on the
// in-memory stores.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.User{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
