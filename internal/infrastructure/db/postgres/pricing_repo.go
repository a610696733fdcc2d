package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// PricingRepo implements ports.PricingRepository using PostgreSQL.
type PricingRepo struct{ db *DB }

func NewPricingRepo(db *DB) *PricingRepo { return &PricingRepo{db: db} }

const pricingColumns = `id, category, description, rate, unit, features, color, icon, active`

func scanPricing(row pgx.Row) (domain.Pricing, error) {
	var p domain.Pricing
	err := row.Scan(&p.ID, &p.Category, &p.Description, &p.Rate, &p.Unit, &p.Features, &p.Color, &p.Icon, &p.Active)
	return p, err
}

func (r *PricingRepo) GetAll(ctx context.Context) ([]domain.Pricing, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+pricingColumns+` FROM pricing ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select pricing: %w", err)
	}
	return collect(rows, scanPricing)
}

func (r *PricingRepo) GetActive(ctx context.Context) ([]domain.Pricing, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+pricingColumns+` FROM pricing WHERE active = true ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select active pricing: %w", err)
	}
	return collect(rows, scanPricing)
}

func (r *PricingRepo) Create(ctx context.Context, in domain.PricingInput) (*domain.Pricing, error) {
	const q = `
INSERT INTO pricing (category, description, rate, unit, features, color, icon, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + pricingColumns
	p := domain.NewPricing(in)
	created, err := scanPricing(r.db.Pool.QueryRow(ctx, q,
		p.Category, p.Description, p.Rate, p.Unit, p.Features, p.Color, p.Icon, p.Active))
	if err != nil {
		return nil, fmt.Errorf("insert pricing: %w", err)
	}
	return &created, nil
}

func (r *PricingRepo) Update(ctx context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error) {
	const sel = `SELECT ` + pricingColumns + ` FROM pricing WHERE id = $1 FOR UPDATE`
	const upd = `
UPDATE pricing
SET category = $2, description = $3, rate = $4, unit = $5, features = $6, color = $7, icon = $8, active = $9
WHERE id = $1`

	var out domain.Pricing
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		p, err := scanPricing(tx.QueryRow(ctx, sel, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPricingNotFound
		}
		if err != nil {
			return fmt.Errorf("select pricing: %w", err)
		}
		p.Apply(patch)
		if _, err := tx.Exec(ctx, upd, p.ID, p.Category, p.Description, p.Rate, p.Unit, p.Features, p.Color, p.Icon, p.Active); err != nil {
			return fmt.Errorf("update pricing: %w", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PricingRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM pricing WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pricing: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
