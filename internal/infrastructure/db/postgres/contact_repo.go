package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// ContactRepo implements ports.ContactRepository using PostgreSQL.
type ContactRepo struct{ db *DB }

func NewContactRepo(db *DB) *ContactRepo { return &ContactRepo{db: db} }

const contactColumns = `id, first_name, last_name, email, phone, service_type, message, status, created_at`

func scanContact(row pgx.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.ServiceType, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

func (r *ContactRepo) GetAll(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	return collect(rows, scanContact)
}

func (r *ContactRepo) Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	const q = `
INSERT INTO contacts (first_name, last_name, email, phone, service_type, message, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + contactColumns
	c := domain.NewContact(in)
	created, err := scanContact(r.db.Pool.QueryRow(ctx, q,
		c.FirstName, c.LastName, c.Email, c.Phone, c.ServiceType, c.Message, c.Status))
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &created, nil
}

func (r *ContactRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	const q = `UPDATE contacts SET status = $2 WHERE id = $1 RETURNING ` + contactColumns
	c, err := scanContact(r.db.Pool.QueryRow(ctx, q, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return &c, nil
}
