package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/modules/restaurants/mapping"
	"github.com/yungbote/restaurants-backend/internal/platform/ctxutil"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

// RestaurantService exposes the catalog use cases. Input is expected to be
// validated by the caller; the service only enforces existence rules.
type RestaurantService interface {
	ListAll(ctx context.Context) ([]domain.RestaurantView, error)
	// GetByID returns (nil, nil) when the restaurant does not exist.
	GetByID(ctx context.Context, id uint) (*domain.RestaurantView, error)
	Create(ctx context.Context, in domain.CreateRestaurantInput) (uint, error)
	Update(ctx context.Context, id uint, in domain.CreateRestaurantInput) error
	Delete(ctx context.Context, id uint) error
}

type restaurantService struct {
	store  domainagg.RestaurantAggregate
	log    *logger.Logger
	tracer trace.Tracer
}

func NewRestaurantService(store domainagg.RestaurantAggregate, baseLog *logger.Logger) RestaurantService {
	return &restaurantService{
		store:  store,
		log:    baseLog.With("service", "RestaurantService"),
		tracer: otel.Tracer("restaurants/services"),
	}
}

func (s *restaurantService) ListAll(ctx context.Context) ([]domain.RestaurantView, error) {
	ctx, span := s.tracer.Start(ctx, "RestaurantService.ListAll")
	defer span.End()

	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "list restaurants", err)
	}
	span.SetAttributes(attribute.Int("restaurants.count", len(rows)))
	return mapping.ToRestaurantViews(rows), nil
}

func (s *restaurantService) GetByID(ctx context.Context, id uint) (*domain.RestaurantView, error) {
	ctx, span := s.tracer.Start(ctx, "RestaurantService.GetByID", trace.WithAttributes(restaurantIDAttr(id)))
	defer span.End()

	row, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "get restaurant", err, "restaurant_id", id)
	}
	if row == nil {
		span.SetAttributes(attribute.Bool("restaurants.found", false))
		return nil, nil
	}
	return mapping.ToRestaurantView(row), nil
}

func (s *restaurantService) Create(ctx context.Context, in domain.CreateRestaurantInput) (uint, error) {
	ctx, span := s.tracer.Start(ctx, "RestaurantService.Create")
	defer span.End()

	// NewRestaurant always starts with an empty dish list.
	row := mapping.NewRestaurant(in)
	id, err := s.store.Create(ctx, row)
	if err != nil {
		return 0, s.fail(ctx, span, "create restaurant", err)
	}
	span.SetAttributes(restaurantIDAttr(id))
	s.log.Info("Restaurant created", append(ctxutil.LogFields(ctx), "restaurant_id", id)...)
	return id, nil
}

func (s *restaurantService) Update(ctx context.Context, id uint, in domain.CreateRestaurantInput) error {
	const op = "Restaurant.Update"
	ctx, span := s.tracer.Start(ctx, "RestaurantService.Update", trace.WithAttributes(restaurantIDAttr(id)))
	defer span.End()

	row, err := s.store.GetByID(ctx, id)
	if err != nil {
		return s.fail(ctx, span, "load restaurant for update", err, "restaurant_id", id)
	}
	if row == nil {
		return s.notFound(ctx, span, op, id)
	}
	mapping.ApplyInput(row, in)
	if err := s.store.Update(ctx, row); err != nil {
		return s.fail(ctx, span, "update restaurant", err, "restaurant_id", id)
	}
	s.log.Info("Restaurant updated", append(ctxutil.LogFields(ctx), "restaurant_id", id)...)
	return nil
}

func (s *restaurantService) Delete(ctx context.Context, id uint) error {
	const op = "Restaurant.Delete"
	ctx, span := s.tracer.Start(ctx, "RestaurantService.Delete", trace.WithAttributes(restaurantIDAttr(id)))
	defer span.End()

	row, err := s.store.GetByID(ctx, id)
	if err != nil {
		return s.fail(ctx, span, "load restaurant for delete", err, "restaurant_id", id)
	}
	if row == nil {
		return s.notFound(ctx, span, op, id)
	}
	if err := s.store.Delete(ctx, row); err != nil {
		return s.fail(ctx, span, "delete restaurant", err, "restaurant_id", id)
	}
	s.log.Info("Restaurant deleted", append(ctxutil.LogFields(ctx), "restaurant_id", id, "dishes", len(row.Dishes))...)
	return nil
}

func (s *restaurantService) notFound(ctx context.Context, span trace.Span, op string, id uint) error {
	err := domainagg.NotFound(op, "Restaurant", id)
	span.SetStatus(codes.Error, "not found")
	s.log.Warn("Restaurant not found", append(ctxutil.LogFields(ctx), "op", op, "restaurant_id", id)...)
	return err
}

func (s *restaurantService) fail(ctx context.Context, span trace.Span, what string, err error, kv ...interface{}) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, what)
	fields := append(ctxutil.LogFields(ctx), kv...)
	s.log.Error("Failed to "+what, append(fields, "error", err)...)
	return fmt.Errorf("%s: %w", what, err)
}

func restaurantIDAttr(id uint) attribute.KeyValue {
	return attribute.Int64("restaurant.id", int64(id))
}
