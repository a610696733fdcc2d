package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/pkg/metrics"
)

// SubmissionGuard abstracts the contact dedup store (Redis).
type SubmissionGuard interface {
	// Claim reports whether this submission is the first within the dedup window.
	Claim(ctx context.Context, email, message string) (bool, error)
	// Release forgets a claim so the submission can be retried.
	Release(ctx context.Context, email, message string) error
}

type ContactService struct {
	repo   ports.ContactRepository
	guard  SubmissionGuard
	logger zerolog.Logger
}

// NewContactService returns a ContactService. guard may be nil, which
// disables duplicate detection.
func NewContactService(repo ports.ContactRepository, guard SubmissionGuard, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, guard: guard, logger: logger}
}

// CreateContact stores a new enquiry with status "new". A repeat of the same
// email and message inside the dedup window fails with
// domain.ErrDuplicateSubmission. Guard failures are logged and ignored. A
// claim is released again when the contact could not be stored.
func (s *ContactService) CreateContact(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	claimed := false
	if s.guard != nil {
		first, err := s.guard.Claim(ctx, in.Email, in.Message)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("submission guard failed, accepting contact")
		case !first:
			metrics.ContactSubmissionsTotal.WithLabelValues("duplicate").Inc()
			s.logger.Info().Str("email", in.Email).Msg("duplicate contact submission rejected")
			return nil, domain.ErrDuplicateSubmission
		default:
			claimed = true
		}
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		if claimed {
			if rerr := s.guard.Release(ctx, in.Email, in.Message); rerr != nil {
				s.logger.Warn().Err(rerr).Msg("submission guard release failed")
			}
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	metrics.RecordMutation(metrics.EntityContact, metrics.OpCreate)
	s.logger.Info().Str("id", created.ID).Msg("contact received")
	return created, nil
}

func (s *ContactService) GetAllContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *ContactService) UpdateContactStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	metrics.RecordMutation(metrics.EntityContact, metrics.OpUpdate)
	s.logger.Info().Str("id", id).Str("status", status).Msg("contact status updated")
	return updated, nil
}

var _ ports.ContactService = (*ContactService)(nil)
