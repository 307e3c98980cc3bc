package database

import (
	"fmt"

	"github.com/emrerecber/exportiq360/internal/config"
	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *logger.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	log.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB, log *logger.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Assessment{},
		&models.Response{},
		&models.Subscription{},
	)
	if err != nil {
		log.Fatal("failed to auto-migrate", "error", err)
	}
	log.Info("database migrated")
}
