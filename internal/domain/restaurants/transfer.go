package restaurants

import "github.com/shopspring/decimal"

// CreateRestaurantInput is the payload accepted for both create and update.
// Dishes are deliberately not part of it.
type CreateRestaurantInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	HasDelivery   bool     `json:"hasDelivery"`
	ContactEmail  *string  `json:"contactEmail"`
	ContactNumber *string  `json:"contactNumber"`
	Address       *Address `json:"address"`
}

type RestaurantView struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	HasDelivery   bool       `json:"hasDelivery"`
	ContactEmail  *string    `json:"contactEmail"`
	ContactNumber *string    `json:"contactNumber"`
	Address       *Address   `json:"address"`
	Dishes        []DishView `json:"dishes"`
}

type DishView struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	KiloCalories *int            `json:"kiloCalories"`
}
