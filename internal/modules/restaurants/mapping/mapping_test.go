package mapping

import (
	"testing"

	"github.com/shopspring/decimal"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

func sampleRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:            1,
		Name:          "Test Restaurant",
		Description:   "Test Description",
		Category:      "Italian",
		HasDelivery:   true,
		ContactEmail:  pointers.String("test@restaurant.com"),
		ContactNumber: pointers.String("+1234567890"),
		Address:       &domain.Address{Street: "123 Test St", City: "Test City", PostalCode: "12345"},
		Dishes: []domain.Dish{{
			ID:           1,
			Name:         "Test Dish",
			Description:  "Test Dish Description",
			Price:        decimal.RequireFromString("12.99"),
			KiloCalories: pointers.Int(500),
			RestaurantID: 1,
		}},
	}
}

func TestToRestaurantViewCopiesEverything(t *testing.T) {
	r := sampleRestaurant()
	v := ToRestaurantView(r)
	if v.ID != 1 || v.Name != r.Name || v.Description != r.Description || v.Category != r.Category || !v.HasDelivery {
		t.Fatalf("scalars: got=%+v", v)
	}
	if *v.ContactEmail != "test@restaurant.com" || *v.ContactNumber != "+1234567890" {
		t.Fatalf("contact: got=%v %v", *v.ContactEmail, *v.ContactNumber)
	}
	if v.Address == nil || *v.Address != *r.Address {
		t.Fatalf("address: got=%+v", v.Address)
	}
	if len(v.Dishes) != 1 || v.Dishes[0].Name != "Test Dish" || !v.Dishes[0].Price.Equal(decimal.RequireFromString("12.99")) {
		t.Fatalf("dishes: got=%+v", v.Dishes)
	}
	if *v.Dishes[0].KiloCalories != 500 {
		t.Fatalf("kcal: got=%d", *v.Dishes[0].KiloCalories)
	}

	*r.ContactEmail = "changed@restaurant.com"
	r.Address.City = "Elsewhere"
	if *v.ContactEmail != "test@restaurant.com" || v.Address.City != "Test City" {
		t.Fatalf("view aliases entity storage")
	}
}

func TestToRestaurantViewAbsentAddress(t *testing.T) {
	r := sampleRestaurant()
	r.Address = nil
	r.Dishes = nil
	v := ToRestaurantView(r)
	if v.Address != nil {
		t.Fatalf("address: want nil got=%+v", v.Address)
	}
	if v.Dishes == nil || len(v.Dishes) != 0 {
		t.Fatalf("dishes: want empty non-nil got=%v", v.Dishes)
	}
	if ToRestaurantView(nil) != nil {
		t.Fatalf("nil restaurant should map to nil view")
	}
}

func TestToRestaurantViewsKeepsOrder(t *testing.T) {
	a := sampleRestaurant()
	b := sampleRestaurant()
	b.ID = 2
	out := ToRestaurantViews([]*domain.Restaurant{b, nil, a})
	if len(out) != 2 || out[0].ID != 2 || out[1].ID != 1 {
		t.Fatalf("order: got=%+v", out)
	}
	if empty := ToRestaurantViews(nil); empty == nil {
		t.Fatalf("want empty slice, got nil")
	}
}

func TestNewRestaurantForcesEmptyDishesAndZeroID(t *testing.T) {
	in := domain.CreateRestaurantInput{
		Name:          "New Restaurant",
		Description:   "New Description",
		Category:      "Mexican",
		ContactEmail:  pointers.String("new@restaurant.com"),
		ContactNumber: pointers.String("+0987654321"),
		Address:       &domain.Address{Street: "456 New St", City: "New City", PostalCode: "54321"},
	}
	r := NewRestaurant(in)
	if r.ID != 0 {
		t.Fatalf("id: want=0 got=%d", r.ID)
	}
	if r.Dishes == nil || len(r.Dishes) != 0 {
		t.Fatalf("dishes: want empty got=%v", r.Dishes)
	}
	if r.Name != in.Name || r.Category != "Mexican" || r.HasDelivery {
		t.Fatalf("scalars: got=%+v", r)
	}
	if r.Address == nil || r.Address.PostalCode != "54321" {
		t.Fatalf("address: got=%+v", r.Address)
	}
	if r.Address == in.Address || r.ContactEmail == in.ContactEmail {
		t.Fatalf("entity aliases input storage")
	}

	in.Address = nil
	in.ContactEmail = nil
	r = NewRestaurant(in)
	if r.Address != nil || r.ContactEmail != nil {
		t.Fatalf("absent optionals should stay absent: %+v", r)
	}
}

func TestApplyInputKeepsIdentityAndDishes(t *testing.T) {
	r := sampleRestaurant()
	ApplyInput(r, domain.CreateRestaurantInput{
		Name:        "Renamed",
		Description: "Updated",
		Category:    "Fusion",
		HasDelivery: false,
	})
	if r.ID != 1 || len(r.Dishes) != 1 {
		t.Fatalf("identity/dishes changed: id=%d dishes=%d", r.ID, len(r.Dishes))
	}
	if r.Name != "Renamed" || r.Category != "Fusion" || r.HasDelivery {
		t.Fatalf("scalars: got=%+v", r)
	}
	if r.Address != nil || r.ContactEmail != nil || r.ContactNumber != nil {
		t.Fatalf("optionals should be cleared: %+v", r)
	}
}
