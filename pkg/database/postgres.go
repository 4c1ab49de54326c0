package database

import (
	"fmt"

	"github.com/daypanel/daypanel-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the Postgres pool. The handle is owned by the caller and
// passed down explicitly; nothing here is package-global.
func New(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
	)
}
