package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/restaurants-backend/internal/data/aggregates"
	"github.com/yungbote/restaurants-backend/internal/data/db"
	"github.com/yungbote/restaurants-backend/internal/data/mongostore"
	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type StoreBootstrapErrorCode string

const (
	StoreBootstrapErrorInvalidDriver StoreBootstrapErrorCode = "invalid_driver"
	StoreBootstrapErrorConnectFailed StoreBootstrapErrorCode = "connect_failed"
	StoreBootstrapErrorMigrateFailed StoreBootstrapErrorCode = "migrate_failed"
)

type StoreBootstrapError struct {
	Code   StoreBootstrapErrorCode
	Driver string
	Cause  error
}

func (e *StoreBootstrapError) Error() string {
	if e == nil {
		return "store bootstrap failed"
	}
	return fmt.Sprintf("store bootstrap failed (code=%s driver=%q): %v", e.Code, e.Driver, e.Cause)
}

func (e *StoreBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Store is the opened backing store together with its restaurant aggregate.
// DB is nil for the mongo driver.
type Store struct {
	Driver    string
	Aggregate domainagg.RestaurantAggregate
	DB        *gorm.DB

	mongo *mongostore.Store
}

func (s *Store) Migrate(ctx context.Context) error {
	var err error
	switch {
	case s.mongo != nil:
		err = s.mongo.EnsureIndexes(ctx)
	case s.DB != nil:
		err = db.AutoMigrateAll(s.DB.WithContext(ctx))
	}
	if err != nil {
		return &StoreBootstrapError{Code: StoreBootstrapErrorMigrateFailed, Driver: s.Driver, Cause: err}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.mongo != nil {
		return s.mongo.Ping(ctx)
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if s.mongo != nil {
		return s.mongo.Close(ctx)
	}
	if s.DB != nil {
		sqlDB, err := s.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func openStore(ctx context.Context, log *logger.Logger, cfg Config, hooks aggregates.Hooks) (*Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	log.Info("Selecting store", "driver", driver)

	switch driver {
	case StoreDriverSQLite, StoreDriverPostgres:
		gdb, err := openGorm(log, driver, cfg)
		if err != nil {
			return nil, classifyStoreBootstrapError(driver, err)
		}
		agg := aggregates.NewRestaurantAggregate(aggregates.RestaurantAggregateDeps{
			Base: aggregates.BaseDeps{DB: gdb, Log: log, Hooks: hooks},
		})
		return &Store{Driver: driver, Aggregate: agg, DB: gdb}, nil
	case StoreDriverMongo:
		ms, err := mongostore.Connect(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, classifyStoreBootstrapError(driver, err)
		}
		agg := mongostore.NewRestaurantAggregate(mongostore.RestaurantAggregateDeps{Store: ms, Log: log, Hooks: hooks})
		return &Store{Driver: driver, Aggregate: agg, mongo: ms}, nil
	default:
		err := &StoreBootstrapError{
			Code:   StoreBootstrapErrorInvalidDriver,
			Driver: driver,
			Cause:  fmt.Errorf("unsupported store driver %q (want %s, %s or %s)", driver, StoreDriverSQLite, StoreDriverPostgres, StoreDriverMongo),
		}
		log.Error("Store selection failed", "driver", driver, "error_code", err.Code, "error", err)
		return nil, err
	}
}

func openGorm(log *logger.Logger, driver string, cfg Config) (*gorm.DB, error) {
	if driver == StoreDriverPostgres {
		pg, err := db.NewPostgresService(cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		return pg.DB(), nil
	}
	lite, err := db.NewSQLiteService(cfg.SQLitePath, log)
	if err != nil {
		return nil, err
	}
	return lite.DB(), nil
}

func classifyStoreBootstrapError(driver string, err error) error {
	var bootstrapErr *StoreBootstrapError
	if errors.As(err, &bootstrapErr) {
		return bootstrapErr
	}
	return &StoreBootstrapError{Code: StoreBootstrapErrorConnectFailed, Driver: driver, Cause: err}
}
