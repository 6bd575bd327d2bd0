package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
)

// RepositoryFactory binds a repository to an open connection.
type RepositoryFactory func(db *sql.DB) repository.TabGroupRepository

// LazyTabGroupRepository defers opening the store until the first operation.
// Open failures surface as repository.ErrUnavailable.
type LazyTabGroupRepository struct {
	provider port.DatabaseProvider
	factory  RepositoryFactory
	repo     repository.TabGroupRepository
	mu       sync.Mutex
}

// NewLazyTabGroupRepository creates a lazy-loading tab group repository.
func NewLazyTabGroupRepository(provider port.DatabaseProvider, factory RepositoryFactory) repository.TabGroupRepository {
	return &LazyTabGroupRepository{provider: provider, factory: factory}
}

// init binds the repository on the first successful open. A failed open is
// reported to the current caller only.
func (r *LazyTabGroupRepository) init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.repo != nil {
		return nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	r.repo = r.factory(db)
	return nil
}

func (r *LazyTabGroupRepository) Put(ctx context.Context, group *entity.TabGroup) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Put(ctx, group)
}

func (r *LazyTabGroupRepository) Get(ctx context.Context, id entity.TabGroupID) (*entity.TabGroup, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, id)
}

func (r *LazyTabGroupRepository) Delete(ctx context.Context, id entity.TabGroupID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

func (r *LazyTabGroupRepository) List(ctx context.Context, order repository.ListOrder) ([]*entity.TabGroup, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, order)
}
