package app

import (
	"context"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/restaurants-backend/internal/data/cache"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type Clients struct {
	Redis *goredis.Client
}

// wireClients connects the optional Redis cache. A configured but unreachable
// Redis is logged and skipped; the catalog keeps serving from the store.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Info("REDIS_ADDR not set, read-through cache disabled")
		return Clients{}
	}
	rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, log)
	if err != nil {
		log.Warn("Redis unavailable, read-through cache disabled", "addr", cfg.RedisAddr, "error", err)
		return Clients{}
	}
	return Clients{Redis: rdb}
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
