package app

import (
	"strings"
	"time"

	"github.com/yungbote/restaurants-backend/internal/data/db"
	"github.com/yungbote/restaurants-backend/internal/data/mongostore"
	"github.com/yungbote/restaurants-backend/internal/observability"
	"github.com/yungbote/restaurants-backend/internal/platform/envutil"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	StoreDriver string
	Postgres    db.PostgresConfig
	SQLitePath  string
	Mongo       mongostore.Config

	RedisAddr string
	CacheTTL  time.Duration

	SeedOnStart bool
	SeedFile    string

	AllowedOrigins []string
	MetricsAddr    string
	Otel           observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:            envutil.String("PORT", "8080", log),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 15*time.Second, log),

		StoreDriver: strings.ToLower(envutil.String("STORE_DRIVER", StoreDriverSQLite, log)),
		Postgres: db.PostgresConfig{
			Host:     envutil.String("POSTGRES_HOST", "localhost", log),
			Port:     envutil.String("POSTGRES_PORT", "5432", log),
			User:     envutil.String("POSTGRES_USER", "postgres", log),
			Password: envutil.String("POSTGRES_PASSWORD", "", log),
			Name:     envutil.String("POSTGRES_NAME", "restaurants", log),
			SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
		},
		SQLitePath: envutil.String("SQLITE_PATH", "restaurants.db", log),
		Mongo: mongostore.Config{
			URI:            envutil.String("MONGO_URI", "mongodb://localhost:27017", log),
			Database:       envutil.String("MONGO_DATABASE", "restaurants", log),
			ConnectTimeout: envutil.Duration("MONGO_CONNECT_TIMEOUT", 10*time.Second, log),
		},

		RedisAddr: envutil.String("REDIS_ADDR", "", log),
		CacheTTL:  time.Duration(envutil.Int("CACHE_TTL_SECONDS", 300, log)) * time.Second,

		SeedOnStart: envutil.Bool("SEED_ON_START", true, log),
		SeedFile:    envutil.String("SEED_FILE", "", log),

		AllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", nil, log),
		MetricsAddr:    envutil.String("METRICS_ADDR", ":9090", log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "restaurants-api", log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1, log),
		},
	}
}

func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
