package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/db/migrations"
)

// Connect opens the Postgres pool, verifies connectivity and applies the
// embedded schema migrations.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	pool, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func runMigrations(ctx context.Context, pool *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, pool.DB, ".")
}
