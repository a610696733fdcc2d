package memory

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

type contentRow = domain.Content

type contentRepo struct{ s *Store }

func (r contentRepo) GetAll(_ context.Context) ([]domain.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.content.list(nil, identity[domain.Content]), nil
}

func (r contentRepo) GetByKey(_ context.Context, key string) (*domain.Content, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if c, ok := r.findByKey(key); ok {
		return &c, nil
	}
	return nil, domain.ErrContentNotFound
}

// UpdateByKey runs the lookup and the write under one lock, so two callers
// racing on an unknown key cannot both insert it.
func (r contentRepo) UpdateByKey(_ context.Context, key, value string) (*domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if c, ok := r.findByKey(key); ok {
		c.Value = value
		c.UpdatedAt = now
		r.s.content.put(c.ID, c)
		return &c, nil
	}

	c := domain.Content{ID: r.s.ids(), Key: key, Value: value, UpdatedAt: now}
	r.s.content.insert(c.ID, c)
	return &c, nil
}

// findByKey must be called with the lock held.
func (r contentRepo) findByKey(key string) (domain.Content, bool) {
	for _, id := range r.s.content.order {
		if c := r.s.content.rows[id]; c.Key == key {
			return c, true
		}
	}
	return domain.Content{}, false
}
