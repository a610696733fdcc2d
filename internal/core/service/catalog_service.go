package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/pkg/metrics"
)

// CatalogService manages the freight services listed on the site.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) GetAllServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *CatalogService) GetActiveServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.GetActive(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityService, metrics.OpCreate)
	s.logger.Info().Str("id", created.ID).Str("type", created.Type).Msg("service created")
	return created, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityService, metrics.OpUpdate)
	s.logger.Info().Str("id", id).Msg("service updated")
	return updated, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	metrics.RecordMutation(metrics.EntityService, metrics.OpDelete)
	s.logger.Info().Str("id", id).Msg("service deleted")
	return true, nil
}

var _ ports.ServiceCatalog = (*CatalogService)(nil)
