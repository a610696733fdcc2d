package ports

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ContentRepository persists keyed site copy.
type ContentRepository interface {
	GetAll(ctx context.Context) ([]domain.Content, error)
	GetByKey(ctx context.Context, key string) (*domain.Content, error)
	// UpdateByKey updates the value stored under key, creating the record
	// when the key is unknown. It never produces two records with one key.
	UpdateByKey(ctx context.Context, key, value string) (*domain.Content, error)
}
