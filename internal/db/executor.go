package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Row and Rows are the slices of the pgx result interfaces the repositories
// actually consume. Keeping the executor to this surface lets tests swap in
// an in-memory implementation.
type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Executor runs one parameterized statement at a time against the pool.
// Parameters are always bound positionally ($1, $2, ...), never interpolated.
// Nothing here holds a connection across calls; multi-step sequences in the
// service layer are deliberately not transactional.
type Executor interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

type PoolExecutor struct {
	pool *pgxpool.Pool
}

func NewPoolExecutor(pool *pgxpool.Pool) *PoolExecutor {
	return &PoolExecutor{pool: pool}
}

func (e *PoolExecutor) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := e.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *PoolExecutor) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return e.pool.QueryRow(ctx, sql, args...)
}

func (e *PoolExecutor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := e.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
