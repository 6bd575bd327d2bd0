// Package postgres provides a PostgreSQL tab group backend for setups that
// share one store between machines.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/logging"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// NewConnection opens dsn, verifies it and applies migrations.
func NewConnection(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn cannot be empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logging.FromContext(ctx).Info().Msg("postgres connection established")
	return db, nil
}

// RunMigrations brings the schema up to the newest embedded version.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}
	m, err := persistence.NewMigrator("postgres", goose.DialectPostgres, db, fsys)
	if err != nil {
		return err
	}
	_, err = m.Up(ctx)
	return err
}

// NewLazyDB returns a provider that connects to dsn on first use.
func NewLazyDB(dsn string) *persistence.LazyDB {
	return persistence.NewLazyDB("postgres", func(ctx context.Context) (*sql.DB, error) {
		return NewConnection(ctx, dsn)
	})
}

// NewLazyTabGroupRepository wires a tab group repository onto a lazy provider.
func NewLazyTabGroupRepository(provider *persistence.LazyDB) repository.TabGroupRepository {
	return persistence.NewLazyTabGroupRepository(provider, NewTabGroupRepository)
}
