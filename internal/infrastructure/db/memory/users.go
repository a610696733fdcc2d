package memory

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

type userRow = domain.User

type userRepo struct{ s *Store }

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.users.order {
		if u := r.s.users.rows[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r userRepo) Create(_ context.Context, in domain.UserInput) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users.rows {
		if u.Username == in.Username {
			return nil, domain.ErrUserExists
		}
	}
	u := domain.User{
		ID:           r.s.ids(),
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		Role:         domain.RoleAdmin,
	}
	r.s.users.insert(u.ID, u)
	return &u, nil
}
