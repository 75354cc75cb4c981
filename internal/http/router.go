package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/restaurants-backend/internal/http/handlers"
	httpMW "github.com/yungbote/restaurants-backend/internal/http/middleware"
	"github.com/yungbote/restaurants-backend/internal/observability"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	RestaurantHandler *httpH.RestaurantHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readycheck", cfg.HealthHandler.ReadyCheck)
	}

	api := r.Group("/api")
	{
		// Restaurants
		if cfg.RestaurantHandler != nil {
			api.GET("/restaurants", cfg.RestaurantHandler.List)
			api.GET("/restaurants/:id", cfg.RestaurantHandler.Get)
			api.POST("/restaurants", cfg.RestaurantHandler.Create)
			api.PUT("/restaurants/:id", cfg.RestaurantHandler.Update)
			api.DELETE("/restaurants/:id", cfg.RestaurantHandler.Delete)
		}
	}

	return r
}
