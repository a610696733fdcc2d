package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/pkg/metrics"
)

type PricingService struct {
	repo   ports.PricingRepository
	logger zerolog.Logger
}

func NewPricingService(repo ports.PricingRepository, logger zerolog.Logger) *PricingService {
	return &PricingService{repo: repo, logger: logger}
}

func (s *PricingService) GetAllPricing(ctx context.Context) ([]domain.Pricing, error) {
	return s.repo.GetAll(ctx)
}

func (s *PricingService) GetActivePricing(ctx context.Context) ([]domain.Pricing, error) {
	return s.repo.GetActive(ctx)
}

func (s *PricingService) CreatePricing(ctx context.Context, in domain.PricingInput) (*domain.Pricing, error) {
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityPricing, metrics.OpCreate)
	s.logger.Info().Str("id", created.ID).Str("category", created.Category).Msg("pricing created")
	return created, nil
}

func (s *PricingService) UpdatePricing(ctx context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityPricing, metrics.OpUpdate)
	s.logger.Info().Str("id", id).Int("rate", updated.Rate).Msg("pricing updated")
	return updated, nil
}

func (s *PricingService) DeletePricing(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	metrics.RecordMutation(metrics.EntityPricing, metrics.OpDelete)
	s.logger.Info().Str("id", id).Msg("pricing deleted")
	return true, nil
}

var _ ports.PricingService = (*PricingService)(nil)
