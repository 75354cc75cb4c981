package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet error
	failSet error
	dels    []string
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, s.failGet
	}
	raw, ok := s.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return raw, nil
}

func (s *memStore) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet != nil {
		return s.failSet
	}
	s.data[key] = val
	return nil
}

func (s *memStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
		s.dels = append(s.dels, k)
	}
	return nil
}

type countingInner struct {
	rows      map[uint]*domain.Restaurant
	nextID    uint
	listCalls int
	getCalls  int
}

func newCountingInner() *countingInner {
	return &countingInner{rows: map[uint]*domain.Restaurant{}, nextID: 1}
}

func (c *countingInner) Contract() domainagg.Contract { return domainagg.RestaurantAggregateContract }

func (c *countingInner) ListAll(context.Context) ([]*domain.Restaurant, error) {
	c.listCalls++
	out := make([]*domain.Restaurant, 0, len(c.rows))
	for id := uint(1); id < c.nextID; id++ {
		if r, ok := c.rows[id]; ok {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (c *countingInner) GetByID(_ context.Context, id uint) (*domain.Restaurant, error) {
	c.getCalls++
	r, ok := c.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (c *countingInner) Create(_ context.Context, r *domain.Restaurant) (uint, error) {
	r.ID = c.nextID
	c.nextID++
	cp := *r
	c.rows[r.ID] = &cp
	return r.ID, nil
}

func (c *countingInner) Update(_ context.Context, r *domain.Restaurant) error {
	cp := *r
	c.rows[r.ID] = &cp
	return nil
}

func (c *countingInner) Delete(_ context.Context, r *domain.Restaurant) error {
	delete(c.rows, r.ID)
	return nil
}

type countingObserver struct {
	counts map[string]int
}

func (o *countingObserver) IncCache(kind, result string) {
	if o.counts == nil {
		o.counts = map[string]int{}
	}
	o.counts[kind+"/"+result]++
}

func TestGetByIDReadsThrough(t *testing.T) {
	ctx := context.Background()
	inner := newCountingInner()
	store := newMemStore()
	obs := &countingObserver{}
	c := NewRestaurantCache(RestaurantCacheDeps{Inner: inner, Store: store, Observer: obs})

	id, _ := inner.Create(ctx, &domain.Restaurant{Name: "Pizza Palace", Address: &domain.Address{City: "New York"}})

	first, err := c.GetByID(ctx, id)
	if err != nil || first == nil || first.Name != "Pizza Palace" {
		t.Fatalf("first GetByID: r=%+v err=%v", first, err)
	}
	second, err := c.GetByID(ctx, id)
	if err != nil || second == nil || second.Address == nil || second.Address.City != "New York" {
		t.Fatalf("second GetByID: r=%+v err=%v", second, err)
	}
	if second.Dishes == nil {
		t.Fatalf("cached restaurant should have non-nil dishes")
	}
	if inner.getCalls != 1 {
		t.Fatalf("inner calls: want=1 got=%d", inner.getCalls)
	}
	if obs.counts["by_id/miss"] != 1 || obs.counts["by_id/hit"] != 1 {
		t.Fatalf("observer: got=%v", obs.counts)
	}
}

func TestAbsentIDIsNotCached(t *testing.T) {
	ctx := context.Background()
	inner := newCountingInner()
	store := newMemStore()
	c := NewRestaurantCache(RestaurantCacheDeps{Inner: inner, Store: store})

	if r, err := c.GetByID(ctx, 999); r != nil || err != nil {
		t.Fatalf("absent: r=%v err=%v", r, err)
	}
	if _, ok := store.data[keyByID(999)]; ok {
		t.Fatalf("absent restaurant should not be cached")
	}
}

func TestWritesInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := newCountingInner()
	store := newMemStore()
	c := NewRestaurantCache(RestaurantCacheDeps{Inner: inner, Store: store})

	id, err := c.Create(ctx, &domain.Restaurant{Name: "Burger Town"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if all, _ := c.ListAll(ctx); len(all) != 1 {
		t.Fatalf("ListAll: want=1 got=%d", len(all))
	}
	if _, err := c.GetByID(ctx, id); err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if err := c.Update(ctx, &domain.Restaurant{ID: id, Name: "Burger City"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := c.GetByID(ctx, id)
	if got.Name != "Burger City" {
		t.Fatalf("stale read after update: %q", got.Name)
	}

	if _, err := c.Create(ctx, &domain.Restaurant{Name: "Sushi Zen"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if all, _ := c.ListAll(ctx); len(all) != 2 {
		t.Fatalf("ListAll after create: want=2 got=%d", len(all))
	}

	if err := c.Delete(ctx, got); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if r, _ := c.GetByID(ctx, id); r != nil {
		t.Fatalf("stale read after delete: %+v", r)
	}
	if all, _ := c.ListAll(ctx); len(all) != 1 {
		t.Fatalf("ListAll after delete: want=1 got=%d", len(all))
	}
}

func TestStoreFailuresFallThrough(t *testing.T) {
	ctx := context.Background()
	inner := newCountingInner()
	store := newMemStore()
	store.failGet = errors.New("connection refused")
	store.failSet = errors.New("connection refused")
	obs := &countingObserver{}
	c := NewRestaurantCache(RestaurantCacheDeps{Inner: inner, Store: store, Observer: obs})

	_, _ = inner.Create(ctx, &domain.Restaurant{Name: "Pizza Palace"})
	all, err := c.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll: rows=%d err=%v", len(all), err)
	}
	if obs.counts["all/error"] != 1 {
		t.Fatalf("observer: got=%v", obs.counts)
	}
}

func TestCorruptEntryIsDropped(t *testing.T) {
	ctx := context.Background()
	inner := newCountingInner()
	store := newMemStore()
	store.data[keyAll] = []byte("{not json")
	c := NewRestaurantCache(RestaurantCacheDeps{Inner: inner, Store: store})

	if _, err := c.ListAll(ctx); err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if inner.listCalls != 1 {
		t.Fatalf("inner calls: want=1 got=%d", inner.listCalls)
	}
	if raw := store.data[keyAll]; string(raw) == "{not json" {
		t.Fatalf("corrupt entry should be replaced")
	}
}

func TestNilStoreReturnsInner(t *testing.T) {
	inner := newCountingInner()
	if got := NewRestaurantCache(RestaurantCacheDeps{Inner: inner}); got != domainagg.RestaurantAggregate(inner) {
		t.Fatalf("want inner passthrough when no store is configured")
	}
}
