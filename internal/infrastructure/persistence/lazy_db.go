package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/logging"
)

// Opener establishes a ready-to-use connection, migrations included.
type Opener func(ctx context.Context) (*sql.DB, error)

// LazyDB implements port.DatabaseProvider with lazy initialization.
// Commands that never touch the store do not pay for opening it.
type LazyDB struct {
	name   string
	open   Opener
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a new lazy database provider.
// The actual connection is not established until DB() is called.
func NewLazyDB(name string, open Opener) *LazyDB {
	return &LazyDB{name: name, open: open}
}

// DB returns the database connection, initializing it if necessary.
// Only a successful open is kept: after a failure the next call opens again.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, fmt.Errorf("database %s already closed", l.name)
	}
	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("backend", l.name).Msg("lazy database initialization starting")

	db, err := l.open(ctx)
	if err != nil {
		log.Error().Err(err).Str("backend", l.name).Msg("lazy database initialization failed")
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}

	l.db = db
	log.Debug().Str("backend", l.name).Msg("lazy database initialized successfully")
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db != nil {
		db := l.db
		l.db = nil
		return db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been initialized.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Name returns the backend label.
func (l *LazyDB) Name() string {
	return l.name
}
