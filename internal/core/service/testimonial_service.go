package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/pkg/metrics"
)

type TestimonialService struct {
	repo   ports.TestimonialRepository
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

func (s *TestimonialService) GetAllTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.GetAll(ctx)
}

func (s *TestimonialService) GetActiveTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.GetActive(ctx)
}

func (s *TestimonialService) CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error) {
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityTestimonial, metrics.OpCreate)
	s.logger.Info().Str("id", created.ID).Int("rating", created.Rating).Msg("testimonial created")
	return created, nil
}

func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityTestimonial, metrics.OpUpdate)
	s.logger.Info().Str("id", id).Msg("testimonial updated")
	return updated, nil
}

func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	metrics.RecordMutation(metrics.EntityTestimonial, metrics.OpDelete)
	s.logger.Info().Str("id", id).Msg("testimonial deleted")
	return true, nil
}

var _ ports.TestimonialService = (*TestimonialService)(nil)
