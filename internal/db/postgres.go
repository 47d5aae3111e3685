package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yungbote/contacts-backend/internal/platform/envutil"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
)

type PostgresService struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPostgresService(ctx context.Context, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	host := envutil.String("POSTGRES_HOST", "localhost", log)
	port := envutil.String("POSTGRES_PORT", "5432", log)
	user := envutil.String("POSTGRES_USER", "postgres", log)
	password := envutil.String("POSTGRES_PASSWORD", "", log)
	name := envutil.String("POSTGRES_NAME", "contacts", log)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

	log.Info("Connecting to Postgres...")
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresService{pool: pool, log: serviceLog}, nil
}

// EnsureSchema creates the three tables at boot. Statements are idempotent;
// this is deliberately not a migration engine.
func (s *PostgresService) EnsureSchema(ctx context.Context) error {
	s.log.Info("Ensuring postgres schema...")
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS addresses (
			address_key TEXT PRIMARY KEY,
			country_id  TEXT NOT NULL DEFAULT '',
			city        TEXT NOT NULL DEFAULT '',
			state       TEXT NOT NULL DEFAULT '',
			zip_code    TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_key   TEXT PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS user_addresses (
			user_key    TEXT NOT NULL,
			address_key TEXT NOT NULL,
			PRIMARY KEY (user_key, address_key)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			s.log.Error("Schema statement failed", "error", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresService) Executor() Executor {
	return NewPoolExecutor(s.pool)
}

func (s *PostgresService) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
