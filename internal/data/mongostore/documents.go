package mongostore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

// restaurantDocument is the stored shape of a restaurant. Dishes live inside
// the restaurant document, so deleting it removes them in the same write.
type restaurantDocument struct {
	ID            uint64           `bson:"_id"`
	Name          string           `bson:"name"`
	Description   string           `bson:"description"`
	Category      string           `bson:"category"`
	HasDelivery   bool             `bson:"hasDelivery"`
	ContactEmail  *string          `bson:"contactEmail,omitempty"`
	ContactNumber *string          `bson:"contactNumber,omitempty"`
	Address       *addressDocument `bson:"address,omitempty"`
	Dishes        []dishDocument   `bson:"dishes"`
	CreatedAt     time.Time        `bson:"createdAt"`
	UpdatedAt     time.Time        `bson:"updatedAt"`
}

type addressDocument struct {
	Street     string `bson:"street,omitempty"`
	City       string `bson:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty"`
}

type dishDocument struct {
	ID           uint64               `bson:"id"`
	Name         string               `bson:"name"`
	Description  string               `bson:"description"`
	Price        primitive.Decimal128 `bson:"price"`
	KiloCalories *int                 `bson:"kiloCalories,omitempty"`
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq uint64 `bson:"seq"`
}

func toDocument(r *domain.Restaurant, now time.Time) (restaurantDocument, error) {
	doc := restaurantDocument{
		ID:            uint64(r.ID),
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		HasDelivery:   r.HasDelivery,
		ContactEmail:  pointers.Clone(r.ContactEmail),
		ContactNumber: pointers.Clone(r.ContactNumber),
		Address:       toAddressDocument(r.Address),
		Dishes:        make([]dishDocument, 0, len(r.Dishes)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, d := range r.Dishes {
		price, err := toDecimal128(d.Price)
		if err != nil {
			return restaurantDocument{}, fmt.Errorf("dish %q: %w", d.Name, err)
		}
		doc.Dishes = append(doc.Dishes, dishDocument{
			ID:           uint64(d.ID),
			Name:         d.Name,
			Description:  d.Description,
			Price:        price,
			KiloCalories: pointers.Clone(d.KiloCalories),
		})
	}
	return doc, nil
}

func fromDocument(doc restaurantDocument) (*domain.Restaurant, error) {
	r := &domain.Restaurant{
		ID:            uint(doc.ID),
		Name:          doc.Name,
		Description:   doc.Description,
		Category:      doc.Category,
		HasDelivery:   doc.HasDelivery,
		ContactEmail:  pointers.Clone(doc.ContactEmail),
		ContactNumber: pointers.Clone(doc.ContactNumber),
		Dishes:        make([]domain.Dish, 0, len(doc.Dishes)),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if doc.Address != nil {
		r.Address = &domain.Address{Street: doc.Address.Street, City: doc.Address.City, PostalCode: doc.Address.PostalCode}
	}
	for _, d := range doc.Dishes {
		price, err := decimal.NewFromString(d.Price.String())
		if err != nil {
			return nil, fmt.Errorf("restaurant %d dish %d price: %w", doc.ID, d.ID, err)
		}
		r.Dishes = append(r.Dishes, domain.Dish{
			ID:           uint(d.ID),
			Name:         d.Name,
			Description:  d.Description,
			Price:        price,
			KiloCalories: pointers.Clone(d.KiloCalories),
			RestaurantID: uint(doc.ID),
		})
	}
	r.Normalize()
	return r, nil
}

func toAddressDocument(a *domain.Address) *addressDocument {
	if a == nil || a.IsZero() {
		return nil
	}
	return &addressDocument{Street: a.Street, City: a.City, PostalCode: a.PostalCode}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(domain.RoundPrice(d).StringFixed(domain.PriceScale))
}
