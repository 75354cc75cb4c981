package restaurants

import "strings"

// Address is a value object stored inline with its restaurant.
type Address struct {
	Street     string `gorm:"column:street;size:200" json:"street"`
	City       string `gorm:"column:city;size:100" json:"city"`
	PostalCode string `gorm:"column:postal_code;size:20" json:"postalCode"`
}

func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.PostalCode) == ""
}
