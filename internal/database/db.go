package database

import (
	"log"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Job{},
		&models.Application{},
		&models.ContactMessage{},
		&models.AdminUser{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
