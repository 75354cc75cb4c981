package aggregates

import (
	"context"

	"github.com/yungbote/restaurants-backend/internal/domain/restaurants"
)

var RestaurantAggregateContract = Contract{
	Name:             "Catalog.RestaurantAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyEagerAggregate,
	Notes:            "Restaurant root with embedded address and owned dishes; delete cascades to dishes atomically.",
}

// RestaurantAggregate is the persistence port for restaurants.
//
// Reads return restaurants with Dishes populated (never nil). GetByID returns
// (nil, nil) when no row matches. Write failures are *Error values; CodeNotFound
// is never used for a row that vanished mid-write, those surface as
// CodePreconditionFailed.
type RestaurantAggregate interface {
	Aggregate

	ListAll(ctx context.Context) ([]*restaurants.Restaurant, error)
	GetByID(ctx context.Context, id uint) (*restaurants.Restaurant, error)

	// Create persists r with its current dish list and returns the assigned id.
	Create(ctx context.Context, r *restaurants.Restaurant) (uint, error)
	// Update persists the scalar fields and address of an identified restaurant.
	Update(ctx context.Context, r *restaurants.Restaurant) error
	// Delete removes r and all of its dishes in one atomic operation.
	Delete(ctx context.Context, r *restaurants.Restaurant) error
}
