package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/bnema/tabstash/internal/logging"
	"github.com/pressly/goose/v3"
)

// SchemaVersion reports where a database stands against the embedded migrations.
type SchemaVersion struct {
	Current int64
	Latest  int64
}

// Pending reports whether migrations remain to be applied.
func (v SchemaVersion) Pending() bool {
	return v.Current < v.Latest
}

// Migrator applies the embedded schema of one backend. It holds its own
// goose provider, so backends never share goose's package-level state.
type Migrator struct {
	backend  string
	provider *goose.Provider
}

// NewMigrator binds the *.sql files at the root of fsys to db.
func NewMigrator(backend string, dialect goose.Dialect, db *sql.DB, fsys fs.FS) (*Migrator, error) {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("load %s migrations: %w", backend, err)
	}
	return &Migrator{backend: backend, provider: provider}, nil
}

// Up applies every pending migration and returns the resulting version.
func (m *Migrator) Up(ctx context.Context) (SchemaVersion, error) {
	log := logging.FromContext(ctx)

	results, err := m.provider.Up(ctx)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("migrate %s schema: %w", m.backend, err)
	}
	for _, res := range results {
		log.Info().
			Str("backend", m.backend).
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("migration applied")
	}

	version, err := m.Version(ctx)
	if err != nil {
		return SchemaVersion{}, err
	}
	if len(results) == 0 {
		log.Debug().Str("backend", m.backend).Int64("version", version.Current).Msg("database schema up to date")
	}
	return version, nil
}

// Version reads the applied and the newest known schema versions.
func (m *Migrator) Version(ctx context.Context) (SchemaVersion, error) {
	current, latest, err := m.provider.GetVersions(ctx)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("read %s schema version: %w", m.backend, err)
	}
	return SchemaVersion{Current: current, Latest: latest}, nil
}
