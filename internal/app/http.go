package app

import (
	"github.com/yungbote/restaurants-backend/internal/http"
	httpH "github.com/yungbote/restaurants-backend/internal/http/handlers"
	"github.com/yungbote/restaurants-backend/internal/modules/restaurants/validation"
	"github.com/yungbote/restaurants-backend/internal/observability"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Restaurant *httpH.RestaurantHandler
}

func wireHandlers(log *logger.Logger, services Services, store *Store) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(httpH.PingFunc(store.Ping)),
		Restaurant: httpH.NewRestaurantHandler(log, services.Restaurants, validation.New()),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		ServiceName:       serviceName,
		AllowedOrigins:    cfg.AllowedOrigins,
		RestaurantHandler: handlers.Restaurant,
		HealthHandler:     handlers.Health,
	})
}
