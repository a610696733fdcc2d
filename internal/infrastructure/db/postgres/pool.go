// Package postgres is the durable Storage Provider backed by PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

// PgxPool is the subset of *pgxpool.Pool the repositories use. It is also
// implemented by pgxmock.PgxPoolIface.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
}

// DB wraps the pool shared by every repository.
type DB struct{ Pool PgxPool }

// New opens a pool for dsn and checks connectivity with SELECT 1.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	db := &DB{Pool: pool}
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

func (db *DB) Ping(ctx context.Context) error {
	var one int
	return db.Pool.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (db *DB) Close() { db.Pool.Close() }

// Storage exposes the postgres repositories as one ports.Storage.
type Storage struct {
	db           *DB
	users        *UserRepo
	content      *ContentRepo
	services     *ServiceRepo
	pricing      *PricingRepo
	testimonials *TestimonialRepo
	contacts     *ContactRepo
}

func NewStorage(db *DB) *Storage {
	return &Storage{
		db:           db,
		users:        NewUserRepo(db),
		content:      NewContentRepo(db),
		services:     NewServiceRepo(db),
		pricing:      NewPricingRepo(db),
		testimonials: NewTestimonialRepo(db),
		contacts:     NewContactRepo(db),
	}
}

func (s *Storage) Users() ports.UserRepository               { return s.users }
func (s *Storage) Content() ports.ContentRepository          { return s.content }
func (s *Storage) Services() ports.ServiceRepository         { return s.services }
func (s *Storage) Pricing() ports.PricingRepository          { return s.pricing }
func (s *Storage) Testimonials() ports.TestimonialRepository { return s.testimonials }
func (s *Storage) Contacts() ports.ContactRepository         { return s.contacts }

func (s *Storage) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

func (s *Storage) Close(context.Context) error {
	s.db.Close()
	return nil
}

var _ ports.Storage = (*Storage)(nil)

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

// inTx runs fn inside a transaction, committing when fn succeeds.
func inTx(ctx context.Context, db *DB, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()
	return fn(tx)
}

// collect scans every row with scan. The result is never nil.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
