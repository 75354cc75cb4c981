package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/restaurants-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type RestaurantAggregateDeps struct {
	Store *Store
	Log   *logger.Logger
	Hooks aggregates.Hooks
	Now   func() time.Time
}

type restaurantAggregate struct {
	store *Store
	base  aggregates.BaseDeps
	now   func() time.Time
}

// NewRestaurantAggregate returns the MongoDB implementation of the restaurant
// persistence port. Each write touches exactly one document.
func NewRestaurantAggregate(deps RestaurantAggregateDeps) domainagg.RestaurantAggregate {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	return &restaurantAggregate{
		store: deps.Store,
		base: aggregates.BaseDeps{
			Log:   deps.Log.With("aggregate", domainagg.RestaurantAggregateContract.Name, "store", "mongo"),
			Hooks: deps.Hooks,
		},
		now: deps.Now,
	}
}

func (a *restaurantAggregate) Contract() domainagg.Contract {
	return domainagg.RestaurantAggregateContract
}

func (a *restaurantAggregate) ListAll(ctx context.Context) ([]*domain.Restaurant, error) {
	out := []*domain.Restaurant{}
	err := aggregates.Observed(ctx, a.base, "Restaurant.ListAll", func(ctx context.Context) error {
		cursor, err := a.store.restaurants().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)
		for cursor.Next(ctx) {
			var doc restaurantDocument
			if err := cursor.Decode(&doc); err != nil {
				return err
			}
			r, err := fromDocument(doc)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *restaurantAggregate) GetByID(ctx context.Context, id uint) (*domain.Restaurant, error) {
	if id == 0 {
		return nil, nil
	}
	var out *domain.Restaurant
	err := aggregates.Observed(ctx, a.base, "Restaurant.GetByID", func(ctx context.Context) error {
		var doc restaurantDocument
		err := a.store.restaurants().FindOne(ctx, bson.M{"_id": uint64(id)}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		if err != nil {
			return err
		}
		out, err = fromDocument(doc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *restaurantAggregate) Create(ctx context.Context, r *domain.Restaurant) (uint, error) {
	err := aggregates.Observed(ctx, a.base, "Restaurant.Create", func(ctx context.Context) error {
		if r == nil {
			return aggregates.ValidationError("restaurant is required")
		}
		if r.ID != 0 {
			return aggregates.ValidationError("restaurant id must be unset on create")
		}
		id, err := a.store.nextIDs(ctx, "restaurant", 1)
		if err != nil {
			return err
		}
		if len(r.Dishes) > 0 {
			first, err := a.store.nextIDs(ctx, "dish", len(r.Dishes))
			if err != nil {
				return err
			}
			for i := range r.Dishes {
				r.Dishes[i].ID = uint(first) + uint(i)
				r.Dishes[i].RestaurantID = uint(id)
			}
		}
		r.ID = uint(id)
		doc, err := toDocument(r, a.now())
		if err != nil {
			return aggregates.ValidationError(err.Error())
		}
		_, err = a.store.restaurants().InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		if r != nil {
			r.ID = 0
			for i := range r.Dishes {
				r.Dishes[i].ID = 0
				r.Dishes[i].RestaurantID = 0
			}
		}
		return 0, err
	}
	r.Normalize()
	return r.ID, nil
}

func (a *restaurantAggregate) Update(ctx context.Context, r *domain.Restaurant) error {
	return aggregates.Observed(ctx, a.base, "Restaurant.Update", func(ctx context.Context) error {
		if r == nil || r.ID == 0 {
			return aggregates.ValidationError("restaurant id is required")
		}
		set := bson.M{
			"name":          r.Name,
			"description":   r.Description,
			"category":      r.Category,
			"hasDelivery":   r.HasDelivery,
			"contactEmail":  r.ContactEmail,
			"contactNumber": r.ContactNumber,
			"address":       toAddressDocument(r.Address),
			"updatedAt":     a.now(),
		}
		res, err := a.store.restaurants().UpdateOne(ctx, bson.M{"_id": uint64(r.ID)}, bson.M{"$set": set})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return aggregates.PreconditionError("restaurant no longer exists")
		}
		return nil
	})
}

func (a *restaurantAggregate) Delete(ctx context.Context, r *domain.Restaurant) error {
	return aggregates.Observed(ctx, a.base, "Restaurant.Delete", func(ctx context.Context) error {
		if r == nil || r.ID == 0 {
			return aggregates.ValidationError("restaurant id is required")
		}
		res, err := a.store.restaurants().DeleteOne(ctx, bson.M{"_id": uint64(r.ID)})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return aggregates.PreconditionError("restaurant no longer exists")
		}
		return nil
	})
}

// Count reports how many restaurants are stored.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.restaurants().CountDocuments(ctx, bson.M{})
}
