package ports

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// The catalog repositories (services, pricing, testimonials) share one
// contract:
//   - GetAll returns every record in insertion order.
//   - GetActive returns the subset with Active == true.
//   - Update merges the patch and fails with a domain.ErrNotFound wrapper
//     when the id does not exist.
//   - Delete reports whether a record was removed; an unknown id is not an error.

// ServiceRepository persists freight services.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetActive(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PricingRepository persists pricing tiers.
type PricingRepository interface {
	GetAll(ctx context.Context) ([]domain.Pricing, error)
	GetActive(ctx context.Context) ([]domain.Pricing, error)
	Create(ctx context.Context, in domain.PricingInput) (*domain.Pricing, error)
	Update(ctx context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TestimonialRepository persists customer testimonials.
type TestimonialRepository interface {
	GetAll(ctx context.Context) ([]domain.Testimonial, error)
	GetActive(ctx context.Context) ([]domain.Testimonial, error)
	Create(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error)
	Update(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) (bool, error)
}
