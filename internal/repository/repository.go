package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository is the generic CRUD contract shared by the reference-data
// collections. Each backing table gets one concrete implementation.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) error
	Delete(ctx context.Context, id string) error
}

// pool is the subset of *pgxpool.Pool the repositories use. Declared here
// so tests can substitute pgxmock.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
