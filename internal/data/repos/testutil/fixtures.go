package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
)

func SeedRestaurant(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Restaurant {
	tb.Helper()
	r := &domain.Restaurant{
		Name:        name,
		Description: "seeded restaurant",
		Category:    "Italian",
		HasDelivery: true,
		Address:     &domain.Address{Street: "123 Main St", City: "New York", PostalCode: "10001"},
	}
	if err := tx.WithContext(ctx).Omit("Dishes").Create(r).Error; err != nil {
		tb.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func SeedDish(tb testing.TB, ctx context.Context, tx *gorm.DB, restaurantID uint, name, price string) *domain.Dish {
	tb.Helper()
	d := &domain.Dish{
		Name:         name,
		Description:  "seeded dish",
		Price:        decimal.RequireFromString(price),
		RestaurantID: restaurantID,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed dish: %v", err)
	}
	return d
}
