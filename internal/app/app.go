package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/restaurants-backend/internal/data/aggregates"
	"github.com/yungbote/restaurants-backend/internal/http"
	"github.com/yungbote/restaurants-backend/internal/observability"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
	"github.com/yungbote/restaurants-backend/internal/seed"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    *Store
	Clients  Clients
	Services Services
	Server   *http.Server
	Metrics  *observability.Metrics

	otelShutdown func(context.Context) error
}

// New loads configuration and opens every dependency. Nothing is migrated or
// served until Migrate, Seed or Serve is called.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(log)

	store, err := openStore(ctx, log, cfg, aggregates.NewObservabilityHooks(metrics))
	if err != nil {
		_ = otelShutdown(context.Background())
		log.Sync()
		return nil, err
	}

	clients := wireClients(ctx, log, cfg)
	restaurants := wireRestaurantStore(log, cfg, store.Aggregate, clients, metrics)
	serviceset := wireServices(log, restaurants)
	handlerset := wireHandlers(log, serviceset, store)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Store:        store,
		Clients:      clients,
		Services:     serviceset,
		Server:       server,
		Metrics:      metrics,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Migrate(ctx context.Context) error {
	a.Log.Info("Migrating store...", "driver", a.Store.Driver)
	return a.Store.Migrate(ctx)
}

// Seed loads the configured catalog into an empty store. The raw store
// aggregate is used so no cache entry is written for the bootstrap reads.
func (a *App) Seed(ctx context.Context) (int, error) {
	catalog, err := seed.LoadCatalog(a.Cfg.SeedFile)
	if err != nil {
		return 0, err
	}
	return seed.NewSeeder(a.Store.Aggregate, a.Log, a.Metrics).Seed(ctx, catalog)
}

// Serve runs the HTTP API, the metrics endpoint and the pool collectors until
// ctx is cancelled or the API server fails.
func (a *App) Serve(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	if a.Metrics != nil {
		a.Metrics.StartServer(gctx, a.Log, a.Cfg.MetricsAddr)
		if a.Store.DB != nil {
			a.Metrics.StartDBCollector(gctx, a.Log, a.Store.DB)
		}
		if a.Clients.Redis != nil {
			a.Metrics.StartRedisCollector(gctx, a.Log, a.Clients.Redis)
		}
	}

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		if err := a.Server.Run(gctx, a.Cfg.Addr(), a.Cfg.ShutdownTimeout); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		a.Log.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Clients.Close()
	if err := a.Store.Close(ctx); err != nil {
		a.Log.Warn("Store close failed", "error", err)
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
