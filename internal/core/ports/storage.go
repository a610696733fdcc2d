package ports

import "context"

// Storage is the Storage Provider: one backend holding every entity kind.
// The memory, postgres and mongo variants all implement it with identical
// read/write semantics.
type Storage interface {
	Users() UserRepository
	Content() ContentRepository
	Services() ServiceRepository
	Pricing() PricingRepository
	Testimonials() TestimonialRepository
	Contacts() ContactRepository

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
