package restaurants

import "github.com/shopspring/decimal"

// Dish belongs to exactly one restaurant and is deleted with it.
type Dish struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"column:name;size:100;not null" json:"name"`
	Description  string          `gorm:"column:description;size:500;not null" json:"description"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	KiloCalories *int            `gorm:"column:kilo_calories" json:"kiloCalories"`
	RestaurantID uint            `gorm:"column:restaurant_id;not null;index" json:"restaurantId"`
}

func (Dish) TableName() string { return "dish" }

// PriceScale is the number of decimal places a dish price is stored with.
const PriceScale = 2

// RoundPrice rounds p to the stored precision.
func RoundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(PriceScale)
}
