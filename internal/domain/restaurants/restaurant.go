package restaurants

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant is the aggregate root of the catalog. It owns its Address and Dishes.
type Restaurant struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;size:100;not null" json:"name"`
	Description string `gorm:"column:description;size:500;not null" json:"description"`
	Category    string `gorm:"column:category;size:50;not null;index" json:"category"`
	HasDelivery bool   `gorm:"column:has_delivery;not null;default:false" json:"hasDelivery"`

	ContactEmail  *string `gorm:"column:contact_email" json:"contactEmail"`
	ContactNumber *string `gorm:"column:contact_number" json:"contactNumber"`

	Address *Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Dishes []Dish `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE" json:"dishes"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Restaurant) TableName() string { return "restaurant" }

// AfterFind restores the owned-value semantics lost in the flat row: an
// address with no populated column is absent and the dish list is never nil.
func (r *Restaurant) AfterFind(_ *gorm.DB) error {
	r.Normalize()
	return nil
}

// Normalize enforces the aggregate's load invariants in place.
func (r *Restaurant) Normalize() {
	if r == nil {
		return
	}
	if r.Address != nil && r.Address.IsZero() {
		r.Address = nil
	}
	if r.Dishes == nil {
		r.Dishes = []Dish{}
	}
}
