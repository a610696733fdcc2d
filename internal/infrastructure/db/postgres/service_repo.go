package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ServiceRepo implements ports.ServiceRepository using PostgreSQL.
type ServiceRepo struct{ db *DB }

func NewServiceRepo(db *DB) *ServiceRepo { return &ServiceRepo{db: db} }

const serviceColumns = `id, name, type, description, next_date, frequency, features, active`

func scanService(row pgx.Row) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Description, &s.NextDate, &s.Frequency, &s.Features, &s.Active)
	return s, err
}

func (r *ServiceRepo) GetAll(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	return collect(rows, scanService)
}

func (r *ServiceRepo) GetActive(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE active = true ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select active services: %w", err)
	}
	return collect(rows, scanService)
}

func (r *ServiceRepo) Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	const q = `
INSERT INTO services (name, type, description, next_date, frequency, features, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + serviceColumns
	s := domain.NewService(in)
	created, err := scanService(r.db.Pool.QueryRow(ctx, q,
		s.Name, s.Type, s.Description, s.NextDate, s.Frequency, s.Features, s.Active))
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return &created, nil
}

// Update locks the row, merges the patch in Go and writes every column back.
func (r *ServiceRepo) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	const sel = `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 FOR UPDATE`
	const upd = `
UPDATE services
SET name = $2, type = $3, description = $4, next_date = $5, frequency = $6, features = $7, active = $8
WHERE id = $1`

	var out domain.Service
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		s, err := scanService(tx.QueryRow(ctx, sel, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrServiceNotFound
		}
		if err != nil {
			return fmt.Errorf("select service: %w", err)
		}
		s.Apply(patch)
		if _, err := tx.Exec(ctx, upd, s.ID, s.Name, s.Type, s.Description, s.NextDate, s.Frequency, s.Features, s.Active); err != nil {
			return fmt.Errorf("update service: %w", err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
