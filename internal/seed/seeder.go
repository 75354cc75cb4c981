package seed

import (
	"context"
	"fmt"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

// Recorder receives the number of restaurants inserted; *observability.Metrics satisfies it.
type Recorder interface {
	AddSeeded(n int)
}

type Seeder struct {
	store    domainagg.RestaurantAggregate
	log      *logger.Logger
	recorder Recorder
}

func NewSeeder(store domainagg.RestaurantAggregate, log *logger.Logger, recorder Recorder) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{store: store, log: log.With("component", "Seeder"), recorder: recorder}
}

// Seed inserts catalog when the store holds no restaurants and returns how
// many were inserted. A non-empty store is left untouched.
func (s *Seeder) Seed(ctx context.Context, catalog []*domain.Restaurant) (int, error) {
	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing restaurants: %w", err)
	}
	if len(existing) > 0 {
		s.log.Debug("Store already has restaurants, skipping seed", "count", len(existing))
		return 0, nil
	}
	inserted := 0
	for _, r := range catalog {
		if r == nil {
			continue
		}
		cp := cloneForInsert(r)
		id, err := s.store.Create(ctx, cp)
		if err != nil {
			s.record(inserted)
			return inserted, fmt.Errorf("seed %q: %w", r.Name, err)
		}
		inserted++
		s.log.Debug("Seeded restaurant", "restaurant_id", id, "name", r.Name, "dishes", len(cp.Dishes))
	}
	s.record(inserted)
	s.log.Info("Seeded sample restaurants", "count", inserted)
	return inserted, nil
}

func (s *Seeder) record(n int) {
	if s.recorder != nil && n > 0 {
		s.recorder.AddSeeded(n)
	}
}

// cloneForInsert copies r so ids assigned by the store never leak back into
// the catalog, which may be seeded again into another store.
func cloneForInsert(r *domain.Restaurant) *domain.Restaurant {
	cp := *r
	cp.ID = 0
	if r.Address != nil {
		addr := *r.Address
		cp.Address = &addr
	}
	cp.Dishes = make([]domain.Dish, len(r.Dishes))
	for i, d := range r.Dishes {
		d.ID = 0
		d.RestaurantID = 0
		cp.Dishes[i] = d
	}
	return &cp
}
