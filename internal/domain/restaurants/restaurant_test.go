package restaurants

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeDropsEmptyAddress(t *testing.T) {
	r := &Restaurant{Address: &Address{Street: "  "}}
	r.Normalize()
	if r.Address != nil {
		t.Fatalf("expected absent address, got=%+v", r.Address)
	}
	if r.Dishes == nil || len(r.Dishes) != 0 {
		t.Fatalf("expected empty non-nil dishes, got=%v", r.Dishes)
	}
}

func TestNormalizeKeepsPopulatedAddress(t *testing.T) {
	r := &Restaurant{Address: &Address{City: "New York"}, Dishes: []Dish{{Name: "Margherita Pizza"}}}
	r.Normalize()
	if r.Address == nil || r.Address.City != "New York" {
		t.Fatalf("address: got=%+v", r.Address)
	}
	if len(r.Dishes) != 1 {
		t.Fatalf("dishes: want=1 got=%d", len(r.Dishes))
	}
}

func TestNormalizeNil(t *testing.T) {
	var r *Restaurant
	r.Normalize()
}

func TestRoundPrice(t *testing.T) {
	got := RoundPrice(decimal.RequireFromString("12.995"))
	if !got.Equal(decimal.RequireFromString("13.00")) {
		t.Fatalf("RoundPrice: got=%s", got)
	}
}
