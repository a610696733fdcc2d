package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// TestimonialRepo implements ports.TestimonialRepository using PostgreSQL.
type TestimonialRepo struct{ db *DB }

func NewTestimonialRepo(db *DB) *TestimonialRepo { return &TestimonialRepo{db: db} }

const testimonialColumns = `id, name, location, content, rating, active, created_at`

func scanTestimonial(row pgx.Row) (domain.Testimonial, error) {
	var t domain.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Location, &t.Content, &t.Rating, &t.Active, &t.CreatedAt)
	return t, err
}

func (r *TestimonialRepo) GetAll(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select testimonials: %w", err)
	}
	return collect(rows, scanTestimonial)
}

func (r *TestimonialRepo) GetActive(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE active = true ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select active testimonials: %w", err)
	}
	return collect(rows, scanTestimonial)
}

func (r *TestimonialRepo) Create(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error) {
	const q = `
INSERT INTO testimonials (name, location, content, rating, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + testimonialColumns
	t := domain.NewTestimonial(in)
	created, err := scanTestimonial(r.db.Pool.QueryRow(ctx, q, t.Name, t.Location, t.Content, t.Rating, t.Active))
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	return &created, nil
}

// Update never writes created_at.
func (r *TestimonialRepo) Update(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	const sel = `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1 FOR UPDATE`
	const upd = `
UPDATE testimonials
SET name = $2, location = $3, content = $4, rating = $5, active = $6
WHERE id = $1`

	var out domain.Testimonial
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		t, err := scanTestimonial(tx.QueryRow(ctx, sel, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTestimonialNotFound
		}
		if err != nil {
			return fmt.Errorf("select testimonial: %w", err)
		}
		t.Apply(patch)
		if _, err := tx.Exec(ctx, upd, t.ID, t.Name, t.Location, t.Content, t.Rating, t.Active); err != nil {
			return fmt.Errorf("update testimonial: %w", err)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete testimonial: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
