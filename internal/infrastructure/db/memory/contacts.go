package memory

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

type contactRow = domain.Contact

type contactRepo struct{ s *Store }

func (r contactRepo) GetAll(_ context.Context) ([]domain.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contacts.list(nil, domain.Contact.Clone), nil
}

func (r contactRepo) Create(_ context.Context, in domain.ContactInput) (*domain.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := domain.NewContact(in)
	c.ID = r.s.ids()
	c.CreatedAt = r.s.now()
	r.s.contacts.insert(c.ID, c)
	out := c.Clone()
	return &out, nil
}

func (r contactRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contacts.get(id)
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	c = c.Clone()
	c.Status = status
	r.s.contacts.put(id, c)
	out := c.Clone()
	return &out, nil
}
