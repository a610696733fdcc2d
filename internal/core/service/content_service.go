package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/pkg/metrics"
)

type ContentService struct {
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger}
}

func (s *ContentService) GetAllContent(ctx context.Context) ([]domain.Content, error) {
	return s.repo.GetAll(ctx)
}

// UpdateContent stores value under key, creating the key when it is new.
func (s *ContentService) UpdateContent(ctx context.Context, key, value string) (*domain.Content, error) {
	c, err := s.repo.UpdateByKey(ctx, key, value)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityContent, metrics.OpUpsert)
	s.logger.Info().Str("key", key).Msg("content updated")
	return c, nil
}

var _ ports.ContentService = (*ContentService)(nil)
