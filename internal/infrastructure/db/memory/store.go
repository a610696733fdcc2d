// Package memory is the volatile Storage Provider: map-backed tables seeded
// with the default site data. Records are copied on the way in and out so
// callers never share mutable state with the store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/seed"
)

// table keeps rows keyed by id together with their insertion order.
type table[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) {
	t.order = append(t.order, id)
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// put replaces an existing row without changing its position.
func (t *table[T]) put(id string, v T) {
	t.rows[id] = v
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns copies of the rows accepted by keep, in insertion order.
// The result is never nil.
func (t *table[T]) list(keep func(T) bool, clone func(T) T) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep != nil && !keep(row) {
			continue
		}
		out = append(out, clone(row))
	}
	return out
}

func identity[T any](v T) T { return v }

// Store implements ports.Storage in memory. One RWMutex guards every table:
// handlers run concurrently and the content upsert must not interleave.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	ids func() string

	users        *table[userRow]
	content      *table[contentRow]
	services     *table[serviceRow]
	pricing      *table[pricingRow]
	testimonials *table[testimonialRow]
	contacts     *table[contactRow]
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used for server-managed timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides identity generation.
func WithIDGenerator(ids func() string) Option {
	return func(s *Store) { s.ids = ids }
}

// NewEmpty returns a store with no records.
func NewEmpty(opts ...Option) *Store {
	s := &Store{
		now:          func() time.Time { return time.Now().UTC() },
		ids:          uuid.NewString,
		users:        newTable[userRow](),
		content:      newTable[contentRow](),
		services:     newTable[serviceRow](),
		pricing:      newTable[pricingRow](),
		testimonials: newTable[testimonialRow](),
		contacts:     newTable[contactRow](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New returns a store pre-populated with the default site data, so a freshly
// started process is never empty.
func New(ctx context.Context, admin seed.Admin, log zerolog.Logger, opts ...Option) (*Store, error) {
	s := NewEmpty(opts...)
	if err := seed.Apply(ctx, s, admin, log); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Users() ports.UserRepository               { return userRepo{s} }
func (s *Store) Content() ports.ContentRepository          { return contentRepo{s} }
func (s *Store) Services() ports.ServiceRepository         { return serviceRepo{s} }
func (s *Store) Pricing() ports.PricingRepository          { return pricingRepo{s} }
func (s *Store) Testimonials() ports.TestimonialRepository { return testimonialRepo{s} }
func (s *Store) Contacts() ports.ContactRepository         { return contactRepo{s} }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

var _ ports.Storage = (*Store)(nil)
