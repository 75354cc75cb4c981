package aggregates

import (
	"context"
	"fmt"

	repos "github.com/yungbote/restaurants-backend/internal/data/repos/restaurants"
	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/dbctx"
)

type RestaurantAggregateDeps struct {
	Base BaseDeps

	Restaurants repos.RestaurantRepo
	Dishes      repos.DishRepo
}

type restaurantAggregate struct {
	deps RestaurantAggregateDeps
}

func NewRestaurantAggregate(deps RestaurantAggregateDeps) domainagg.RestaurantAggregate {
	deps.Base = deps.Base.withDefaults()
	if deps.Restaurants == nil {
		deps.Restaurants = repos.NewRestaurantRepo(deps.Base.DB, deps.Base.Log)
	}
	if deps.Dishes == nil {
		deps.Dishes = repos.NewDishRepo(deps.Base.DB, deps.Base.Log)
	}
	deps.Base.Log = deps.Base.Log.With("aggregate", domainagg.RestaurantAggregateContract.Name)
	return &restaurantAggregate{deps: deps}
}

func (a *restaurantAggregate) Contract() domainagg.Contract {
	return domainagg.RestaurantAggregateContract
}

func (a *restaurantAggregate) ListAll(ctx context.Context) ([]*domain.Restaurant, error) {
	const op = "Restaurant.ListAll"
	var out []*domain.Restaurant
	err := executeRead(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		rows, err := a.deps.Restaurants.ListWithDishes(dbc)
		if err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, r := range out {
		r.Normalize()
	}
	return out, nil
}

func (a *restaurantAggregate) GetByID(ctx context.Context, id uint) (*domain.Restaurant, error) {
	const op = "Restaurant.GetByID"
	if id == 0 {
		return nil, nil
	}
	var out *domain.Restaurant
	err := executeRead(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		row, err := a.deps.Restaurants.GetByID(dbc, id)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Normalize()
	return out, nil
}

func (a *restaurantAggregate) Create(ctx context.Context, r *domain.Restaurant) (uint, error) {
	const op = "Restaurant.Create"
	if r == nil {
		return 0, domainagg.NewError(domainagg.CodeValidation, op, "missing restaurant", nil)
	}
	if r.ID != 0 {
		return 0, domainagg.NewError(domainagg.CodeValidation, op, "restaurant id is assigned by the store", nil)
	}
	r.Normalize()

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := a.deps.Restaurants.Create(dbc, []*domain.Restaurant{r}); err != nil {
			return err
		}
		if len(r.Dishes) == 0 {
			return nil
		}
		dishes := make([]*domain.Dish, 0, len(r.Dishes))
		for i := range r.Dishes {
			r.Dishes[i].ID = 0
			r.Dishes[i].RestaurantID = r.ID
			dishes = append(dishes, &r.Dishes[i])
		}
		_, err := a.deps.Dishes.Create(dbc, dishes)
		return err
	})
	if err != nil {
		r.ID = 0
		return 0, err
	}
	a.deps.Base.Log.Debug("restaurant created", "restaurant_id", r.ID, "dishes", len(r.Dishes))
	return r.ID, nil
}

// Update rewrites the scalar and address columns only; dishes are untouched.
func (a *restaurantAggregate) Update(ctx context.Context, r *domain.Restaurant) error {
	const op = "Restaurant.Update"
	if r == nil || r.ID == 0 {
		return domainagg.NewError(domainagg.CodeValidation, op, "missing restaurant id", nil)
	}
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		n, err := a.deps.Restaurants.UpdateColumns(dbc, r)
		if err != nil {
			return err
		}
		if n == 0 {
			return PreconditionError(fmt.Sprintf("restaurant %d no longer exists", r.ID))
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.deps.Base.Log.Debug("restaurant updated", "restaurant_id", r.ID)
	return nil
}

// Delete removes the dishes first, then the root, inside one transaction.
func (a *restaurantAggregate) Delete(ctx context.Context, r *domain.Restaurant) error {
	const op = "Restaurant.Delete"
	if r == nil || r.ID == 0 {
		return domainagg.NewError(domainagg.CodeValidation, op, "missing restaurant id", nil)
	}
	var dishCount int64
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		n, err := a.deps.Dishes.DeleteByRestaurantIDs(dbc, []uint{r.ID})
		if err != nil {
			return err
		}
		dishCount = n
		deleted, err := a.deps.Restaurants.DeleteByIDs(dbc, []uint{r.ID})
		if err != nil {
			return err
		}
		if deleted == 0 {
			return PreconditionError(fmt.Sprintf("restaurant %d no longer exists", r.ID))
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.deps.Base.Log.Debug("restaurant deleted", "restaurant_id", r.ID, "dishes", dishCount)
	return nil
}
