package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ContentRepo implements ports.ContentRepository using PostgreSQL.
type ContentRepo struct{ db *DB }

func NewContentRepo(db *DB) *ContentRepo { return &ContentRepo{db: db} }

const contentColumns = `id, key, value, updated_at`

func scanContent(row pgx.Row) (domain.Content, error) {
	var c domain.Content
	err := row.Scan(&c.ID, &c.Key, &c.Value, &c.UpdatedAt)
	return c, err
}

func (r *ContentRepo) GetAll(ctx context.Context) ([]domain.Content, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+contentColumns+` FROM content ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select content: %w", err)
	}
	return collect(rows, scanContent)
}

func (r *ContentRepo) GetByKey(ctx context.Context, key string) (*domain.Content, error) {
	c, err := scanContent(r.db.Pool.QueryRow(ctx, `SELECT `+contentColumns+` FROM content WHERE key = $1`, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select content: %w", err)
	}
	return &c, nil
}

// UpdateByKey is a single INSERT … ON CONFLICT statement, so the engine
// guarantees one row per key. A unique violation can still surface from a
// racing writer on older servers; it is reported as the retryable
// domain.ErrDuplicateKey.
func (r *ContentRepo) UpdateByKey(ctx context.Context, key, value string) (*domain.Content, error) {
	const q = `
INSERT INTO content (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
RETURNING ` + contentColumns
	c, err := scanContent(r.db.Pool.QueryRow(ctx, q, key, value))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("upsert content %q: %w", key, domain.ErrDuplicateKey)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	return &c, nil
}
