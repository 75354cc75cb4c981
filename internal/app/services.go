package app

import (
	"github.com/yungbote/restaurants-backend/internal/data/cache"
	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	"github.com/yungbote/restaurants-backend/internal/observability"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
	"github.com/yungbote/restaurants-backend/internal/services"
)

type Services struct {
	Restaurants services.RestaurantService
}

// wireRestaurantStore puts the read-through cache in front of the store
// aggregate when a Redis client is available.
func wireRestaurantStore(log *logger.Logger, cfg Config, store domainagg.RestaurantAggregate, clients Clients, metrics *observability.Metrics) domainagg.RestaurantAggregate {
	if clients.Redis == nil {
		return store
	}
	log.Info("Enabling read-through restaurant cache", "ttl", cfg.CacheTTL)
	return cache.NewRestaurantCache(cache.RestaurantCacheDeps{
		Inner:    store,
		Store:    cache.NewRedisStore(clients.Redis),
		TTL:      cfg.CacheTTL,
		Log:      log,
		Observer: metrics,
	})
}

func wireServices(log *logger.Logger, restaurants domainagg.RestaurantAggregate) Services {
	log.Info("Wiring services...")
	return Services{
		Restaurants: services.NewRestaurantService(restaurants, log),
	}
}
