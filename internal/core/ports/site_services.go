package ports

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ContentService exposes editable site copy.
type ContentService interface {
	GetAllContent(ctx context.Context) ([]domain.Content, error)
	UpdateContent(ctx context.Context, key, value string) (*domain.Content, error)
}

// ServiceCatalog manages the freight services offered on the site.
type ServiceCatalog interface {
	GetAllServices(ctx context.Context) ([]domain.Service, error)
	GetActiveServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)
}

// PricingService manages the rate card.
type PricingService interface {
	GetAllPricing(ctx context.Context) ([]domain.Pricing, error)
	GetActivePricing(ctx context.Context) ([]domain.Pricing, error)
	CreatePricing(ctx context.Context, in domain.PricingInput) (*domain.Pricing, error)
	UpdatePricing(ctx context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error)
	DeletePricing(ctx context.Context, id string) (bool, error)
}

// TestimonialService manages customer testimonials.
type TestimonialService interface {
	GetAllTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	GetActiveTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) (bool, error)
}

// ContactService handles contact form intake and follow-up status.
type ContactService interface {
	CreateContact(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
	GetAllContacts(ctx context.Context) ([]domain.Contact, error)
	UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error)
}
