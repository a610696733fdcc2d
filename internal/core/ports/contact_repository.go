package ports

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ContactRepository persists contact form enquiries. Contacts are never
// deleted and only their status can change.
type ContactRepository interface {
	GetAll(ctx context.Context) ([]domain.Contact, error)
	Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error)
}
