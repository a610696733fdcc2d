package ports

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// UserRepository defines persistence operations for admin users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByUsername is a case-sensitive exact match.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create always stores the user with domain.RoleAdmin.
	Create(ctx context.Context, in domain.UserInput) (*domain.User, error)
}
