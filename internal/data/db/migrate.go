package db

import (
	"fmt"

	"gorm.io/gorm"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Restaurant{},
		&domain.Dish{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return EnsureCatalogIndexes(db)
}

// EnsureCatalogIndexes adds the indexes AutoMigrate does not derive from tags.
func EnsureCatalogIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_dish_restaurant_id_id
		ON dish (restaurant_id, id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_dish_restaurant_id_id: %w", err)
	}
	return nil
}
