package memory

import (
	"context"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

type (
	serviceRow     = domain.Service
	pricingRow     = domain.Pricing
	testimonialRow = domain.Testimonial
)

// --- services ---

type serviceRepo struct{ s *Store }

func (r serviceRepo) GetAll(_ context.Context) ([]domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.services.list(nil, domain.Service.Clone), nil
}

func (r serviceRepo) GetActive(_ context.Context) ([]domain.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.services.list(func(s domain.Service) bool { return s.Active }, domain.Service.Clone), nil
}

func (r serviceRepo) Create(_ context.Context, in domain.ServiceInput) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc := domain.NewService(in)
	svc.ID = r.s.ids()
	r.s.services.insert(svc.ID, svc)
	out := svc.Clone()
	return &out, nil
}

func (r serviceRepo) Update(_ context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.services.get(id)
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	svc = svc.Clone()
	svc.Apply(patch)
	r.s.services.put(id, svc)
	out := svc.Clone()
	return &out, nil
}

func (r serviceRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services.remove(id), nil
}

// --- pricing ---

type pricingRepo struct{ s *Store }

func (r pricingRepo) GetAll(_ context.Context) ([]domain.Pricing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.pricing.list(nil, domain.Pricing.Clone), nil
}

func (r pricingRepo) GetActive(_ context.Context) ([]domain.Pricing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.pricing.list(func(p domain.Pricing) bool { return p.Active }, domain.Pricing.Clone), nil
}

func (r pricingRepo) Create(_ context.Context, in domain.PricingInput) (*domain.Pricing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := domain.NewPricing(in)
	p.ID = r.s.ids()
	r.s.pricing.insert(p.ID, p)
	out := p.Clone()
	return &out, nil
}

func (r pricingRepo) Update(_ context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pricing.get(id)
	if !ok {
		return nil, domain.ErrPricingNotFound
	}
	p = p.Clone()
	p.Apply(patch)
	r.s.pricing.put(id, p)
	out := p.Clone()
	return &out, nil
}

func (r pricingRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pricing.remove(id), nil
}

// --- testimonials ---

type testimonialRepo struct{ s *Store }

func (r testimonialRepo) GetAll(_ context.Context) ([]domain.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.testimonials.list(nil, identity[domain.Testimonial]), nil
}

func (r testimonialRepo) GetActive(_ context.Context) ([]domain.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.testimonials.list(func(t domain.Testimonial) bool { return t.Active }, identity[domain.Testimonial]), nil
}

func (r testimonialRepo) Create(_ context.Context, in domain.TestimonialInput) (*domain.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := domain.NewTestimonial(in)
	t.ID = r.s.ids()
	t.CreatedAt = r.s.now()
	r.s.testimonials.insert(t.ID, t)
	return &t, nil
}

func (r testimonialRepo) Update(_ context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.testimonials.get(id)
	if !ok {
		return nil, domain.ErrTestimonialNotFound
	}
	t.Apply(patch)
	r.s.testimonials.put(id, t)
	return &t, nil
}

func (r testimonialRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.testimonials.remove(id), nil
}
