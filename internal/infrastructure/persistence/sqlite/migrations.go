package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrator(db *sql.DB) (*persistence.Migrator, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return persistence.NewMigrator("sqlite", goose.DialectSQLite3, db, fsys)
}

// RunMigrations brings the schema up to the newest embedded version.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	_, err = m.Up(ctx)
	return err
}

// SchemaVersion reports the applied and newest known schema versions.
func SchemaVersion(ctx context.Context, db *sql.DB) (persistence.SchemaVersion, error) {
	m, err := newMigrator(db)
	if err != nil {
		return persistence.SchemaVersion{}, err
	}
	return m.Version(ctx)
}
