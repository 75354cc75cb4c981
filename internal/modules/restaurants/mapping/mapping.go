package mapping

import (
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

func ToRestaurantView(r *domain.Restaurant) *domain.RestaurantView {
	if r == nil {
		return nil
	}
	dishes := make([]domain.DishView, 0, len(r.Dishes))
	for i := range r.Dishes {
		dishes = append(dishes, ToDishView(r.Dishes[i]))
	}
	return &domain.RestaurantView{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		HasDelivery:   r.HasDelivery,
		ContactEmail:  pointers.Clone(r.ContactEmail),
		ContactNumber: pointers.Clone(r.ContactNumber),
		Address:       cloneAddress(r.Address),
		Dishes:        dishes,
	}
}

// ToRestaurantViews keeps the order of rows and never returns nil.
func ToRestaurantViews(rows []*domain.Restaurant) []domain.RestaurantView {
	out := make([]domain.RestaurantView, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, *ToRestaurantView(r))
	}
	return out
}

func ToDishView(d domain.Dish) domain.DishView {
	return domain.DishView{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		KiloCalories: pointers.Clone(d.KiloCalories),
	}
}

// NewRestaurant builds an unsaved restaurant. The id is left for the store to
// assign and the dish list always starts empty.
func NewRestaurant(in domain.CreateRestaurantInput) *domain.Restaurant {
	r := &domain.Restaurant{}
	ApplyInput(r, in)
	r.ID = 0
	r.Dishes = []domain.Dish{}
	return r
}

// ApplyInput overwrites the scalar and address fields of an already loaded
// restaurant. ID and Dishes are left as they are.
func ApplyInput(r *domain.Restaurant, in domain.CreateRestaurantInput) {
	if r == nil {
		return
	}
	r.Name = in.Name
	r.Description = in.Description
	r.Category = in.Category
	r.HasDelivery = in.HasDelivery
	r.ContactEmail = pointers.Clone(in.ContactEmail)
	r.ContactNumber = pointers.Clone(in.ContactNumber)
	r.Address = cloneAddress(in.Address)
}

func cloneAddress(a *domain.Address) *domain.Address {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
