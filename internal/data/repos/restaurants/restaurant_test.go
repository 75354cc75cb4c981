package restaurants

import (
	"context"
	"testing"

	"github.com/yungbote/restaurants-backend/internal/data/repos/testutil"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/dbctx"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

func TestRestaurantRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewRestaurantRepo(db, testutil.Logger(t))

	r1 := &domain.Restaurant{
		Name:         "Pizza Palace",
		Description:  "Authentic Italian pizza",
		Category:     "Italian",
		HasDelivery:  true,
		ContactEmail: pointers.String("info@pizzapalace.com"),
		Address:      &domain.Address{Street: "123 Main St", City: "New York", PostalCode: "10001"},
		Dishes:       []domain.Dish{},
	}
	r2 := &domain.Restaurant{Name: "Sushi Zen", Description: "Fresh sushi", Category: "Japanese"}
	if _, err := repo.Create(dbc, []*domain.Restaurant{r1, r2}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r1.ID == 0 || r2.ID == 0 || r1.ID == r2.ID {
		t.Fatalf("Create: ids not assigned: %d %d", r1.ID, r2.ID)
	}

	testutil.SeedDish(t, ctx, tx, r1.ID, "Margherita Pizza", "12.99")
	testutil.SeedDish(t, ctx, tx, r1.ID, "Pepperoni Pizza", "15.99")

	got, err := repo.GetByID(dbc, r1.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if len(got.Dishes) != 2 || got.Dishes[0].Name != "Margherita Pizza" {
		t.Fatalf("GetByID dishes: %+v", got.Dishes)
	}
	if got.Address == nil || got.Address.City != "New York" {
		t.Fatalf("GetByID address: %+v", got.Address)
	}

	got2, err := repo.GetByID(dbc, r2.ID)
	if err != nil || got2 == nil {
		t.Fatalf("GetByID r2: got=%v err=%v", got2, err)
	}
	if got2.Address != nil {
		t.Fatalf("r2 address: want nil got=%+v", got2.Address)
	}
	if got2.Dishes == nil || len(got2.Dishes) != 0 {
		t.Fatalf("r2 dishes: want empty got=%v", got2.Dishes)
	}

	if missing, err := repo.GetByID(dbc, 99999); err != nil || missing != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", missing, err)
	}

	all, err := repo.ListWithDishes(dbc)
	if err != nil || len(all) != 2 || all[0].ID != r1.ID {
		t.Fatalf("ListWithDishes: err=%v len=%d", err, len(all))
	}
	if n, err := repo.Count(dbc); err != nil || n != 2 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
	if ok, err := repo.ExistsByID(dbc, r2.ID); err != nil || !ok {
		t.Fatalf("ExistsByID: ok=%v err=%v", ok, err)
	}

	r1.Name = "Pizza Palace Deluxe"
	r1.Address = nil
	r1.ContactEmail = nil
	if n, err := repo.UpdateColumns(dbc, r1); err != nil || n != 1 {
		t.Fatalf("UpdateColumns: n=%d err=%v", n, err)
	}
	got, _ = repo.GetByID(dbc, r1.ID)
	if got.Name != "Pizza Palace Deluxe" || got.Address != nil || got.ContactEmail != nil {
		t.Fatalf("after update: %+v", got)
	}
	if len(got.Dishes) != 2 {
		t.Fatalf("update touched dishes: %d", len(got.Dishes))
	}

	ghost := &domain.Restaurant{ID: 99999, Name: "ghost", Description: "ghost", Category: "ghost"}
	if n, err := repo.UpdateColumns(dbc, ghost); err != nil || n != 0 {
		t.Fatalf("UpdateColumns missing: n=%d err=%v", n, err)
	}
	if n, _ := repo.Count(dbc); n != 2 {
		t.Fatalf("UpdateColumns must not insert: count=%d", n)
	}

	if n, err := repo.DeleteByIDs(dbc, []uint{r2.ID}); err != nil || n != 1 {
		t.Fatalf("DeleteByIDs: n=%d err=%v", n, err)
	}
	if ok, _ := repo.ExistsByID(dbc, r2.ID); ok {
		t.Fatalf("r2 still exists")
	}
}

func TestDishRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDishRepo(db, testutil.Logger(t))

	a := testutil.SeedRestaurant(t, ctx, tx, "Burger Town")
	b := testutil.SeedRestaurant(t, ctx, tx, "Sushi Zen")

	dishes := []*domain.Dish{
		{Name: "Classic Cheeseburger", Description: "Beef patty", RestaurantID: a.ID, KiloCalories: pointers.Int(650)},
		{Name: "BBQ Bacon Burger", Description: "BBQ sauce", RestaurantID: a.ID},
		{Name: "Salmon Nigiri", Description: "Fresh salmon", RestaurantID: b.ID},
	}
	if _, err := repo.Create(dbc, dishes); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.GetByRestaurantIDs(dbc, []uint{a.ID})
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByRestaurantIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].KiloCalories == nil || *rows[0].KiloCalories != 650 {
		t.Fatalf("kcal: %+v", rows[0].KiloCalories)
	}
	if n, err := repo.CountByRestaurantIDs(dbc, []uint{a.ID, b.ID}); err != nil || n != 3 {
		t.Fatalf("CountByRestaurantIDs: n=%d err=%v", n, err)
	}

	if n, err := repo.DeleteByRestaurantIDs(dbc, []uint{a.ID}); err != nil || n != 2 {
		t.Fatalf("DeleteByRestaurantIDs: n=%d err=%v", n, err)
	}
	if rows, _ := repo.GetByRestaurantIDs(dbc, []uint{b.ID}); len(rows) != 1 {
		t.Fatalf("other restaurant's dishes touched: %d", len(rows))
	}
}
