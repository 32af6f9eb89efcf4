package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	articleentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	authentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	channelentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/entities"
	commententities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&authentities.User{},
		&authentities.AdminCode{},
		&channelentities.Channel{},
		&articleentities.Article{},
		&commententities.Comment{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}
