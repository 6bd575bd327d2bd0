package sqlite

import (
	"context"
	"database/sql"

	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
)

// NewLazyDB returns a provider that opens dbPath on first use.
func NewLazyDB(dbPath string) *persistence.LazyDB {
	return persistence.NewLazyDB("sqlite", func(ctx context.Context) (*sql.DB, error) {
		return NewConnection(ctx, dbPath)
	})
}

// NewLazyTabGroupRepository wires a tab group repository onto a lazy provider.
func NewLazyTabGroupRepository(provider *persistence.LazyDB) repository.TabGroupRepository {
	return persistence.NewLazyTabGroupRepository(provider, NewTabGroupRepository)
}
