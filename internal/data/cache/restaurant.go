package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

const (
	keyPrefix = "restaurants:v1:"
	keyAll    = keyPrefix + "all"
)

func keyByID(id uint) string {
	return keyPrefix + "id:" + strconv.FormatUint(uint64(id), 10)
}

// Observer receives cache results; *observability.Metrics satisfies it.
type Observer interface {
	IncCache(kind, result string)
}

type noopObserver struct{}

func (noopObserver) IncCache(string, string) {}

type RestaurantCacheDeps struct {
	Inner    domainagg.RestaurantAggregate
	Store    Store
	TTL      time.Duration
	Log      *logger.Logger
	Observer Observer
}

// restaurantCache is a read-through decorator over the persistence port.
// Cache failures are logged and never fail the call; writes go to the inner
// store first and then invalidate the affected keys.
type restaurantCache struct {
	inner domainagg.RestaurantAggregate
	store Store
	ttl   time.Duration
	log   *logger.Logger
	obs   Observer
}

func NewRestaurantCache(deps RestaurantCacheDeps) domainagg.RestaurantAggregate {
	if deps.Store == nil {
		return deps.Inner
	}
	if deps.TTL <= 0 {
		deps.TTL = 5 * time.Minute
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Observer == nil {
		deps.Observer = noopObserver{}
	}
	return &restaurantCache{
		inner: deps.Inner,
		store: deps.Store,
		ttl:   deps.TTL,
		log:   deps.Log.With("component", "RestaurantCache"),
		obs:   deps.Observer,
	}
}

func (c *restaurantCache) Contract() domainagg.Contract { return c.inner.Contract() }

func (c *restaurantCache) ListAll(ctx context.Context) ([]*domain.Restaurant, error) {
	var cached []*domain.Restaurant
	if c.load(ctx, "all", keyAll, &cached) {
		for _, r := range cached {
			r.Normalize()
		}
		return cached, nil
	}
	rows, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c.save(ctx, keyAll, rows)
	return rows, nil
}

func (c *restaurantCache) GetByID(ctx context.Context, id uint) (*domain.Restaurant, error) {
	var cached domain.Restaurant
	if c.load(ctx, "by_id", keyByID(id), &cached) {
		cached.Normalize()
		return &cached, nil
	}
	row, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Absent ids are not cached so a later create is visible immediately.
	if row != nil {
		c.save(ctx, keyByID(id), row)
	}
	return row, nil
}

func (c *restaurantCache) Create(ctx context.Context, r *domain.Restaurant) (uint, error) {
	id, err := c.inner.Create(ctx, r)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, keyAll)
	return id, nil
}

func (c *restaurantCache) Update(ctx context.Context, r *domain.Restaurant) error {
	err := c.inner.Update(ctx, r)
	if r != nil {
		c.invalidate(ctx, keyAll, keyByID(r.ID))
	}
	return err
}

func (c *restaurantCache) Delete(ctx context.Context, r *domain.Restaurant) error {
	err := c.inner.Delete(ctx, r)
	if r != nil {
		c.invalidate(ctx, keyAll, keyByID(r.ID))
	}
	return err
}

func (c *restaurantCache) load(ctx context.Context, kind, key string, dst interface{}) bool {
	raw, err := c.store.Get(ctx, key)
	switch {
	case errors.Is(err, ErrMiss):
		c.obs.IncCache(kind, "miss")
		return false
	case err != nil:
		c.obs.IncCache(kind, "error")
		c.log.Warn("cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.obs.IncCache(kind, "error")
		c.log.Warn("cache entry undecodable, dropping", "key", key, "error", err)
		c.invalidate(ctx, key)
		return false
	}
	c.obs.IncCache(kind, "hit")
	return true
}

func (c *restaurantCache) save(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *restaurantCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.store.Del(ctx, keys...); err != nil {
		c.log.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
