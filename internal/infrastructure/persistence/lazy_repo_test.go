package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_RetriesAfterInitFailure(t *testing.T) {
	calls := 0
	lazy := NewLazyDB("broken", func(context.Context) (*sql.DB, error) {
		calls++
		return nil, errors.New("permission denied")
	})

	_, err := lazy.DB(context.Background())
	require.Error(t, err)
	_, err = lazy.DB(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, calls)
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_CanceledOpenDoesNotPoisonLaterCalls(t *testing.T) {
	db := new(sql.DB)
	calls := 0
	lazy := NewLazyDB("flaky", func(ctx context.Context) (*sql.DB, error) {
		calls++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return db, nil
	})

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lazy.DB(canceled)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, lazy.IsInitialized())

	got, err := lazy.DB(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.True(t, lazy.IsInitialized())

	// a successful open is kept
	_, err = lazy.DB(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLazyDB_NotOpenedUntilUsed(t *testing.T) {
	lazy := NewLazyDB("idle", func(context.Context) (*sql.DB, error) {
		t.Fatal("opener must not run")
		return nil, nil
	})

	assert.False(t, lazy.IsInitialized())
	assert.Equal(t, "idle", lazy.Name())
	assert.NoError(t, lazy.Close())
}

func TestLazyTabGroupRepository_OpenFailureIsUnavailable(t *testing.T) {
	lazy := NewLazyDB("broken", func(context.Context) (*sql.DB, error) {
		return nil, errors.New("disk gone")
	})
	repo := NewLazyTabGroupRepository(lazy, func(*sql.DB) repository.TabGroupRepository {
		t.Fatal("factory must not run")
		return nil
	})
	ctx := context.Background()

	_, err := repo.List(ctx, repository.NewestFirst)
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	_, err = repo.Get(ctx, "x")
	assert.ErrorIs(t, err, repository.ErrUnavailable)

	assert.ErrorIs(t, repo.Put(ctx, entity.NewTabGroup(entity.TabGroupParams{})), repository.ErrUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, "x"), repository.ErrUnavailable)
}

func TestLazyTabGroupRepository_RecoversAfterFailedOpen(t *testing.T) {
	fail := true
	lazy := NewLazyDB("flaky", func(context.Context) (*sql.DB, error) {
		if fail {
			return nil, context.Canceled
		}
		return new(sql.DB), nil
	})
	inner := mocks.NewMockTabGroupRepository(t)
	var bound int
	repo := NewLazyTabGroupRepository(lazy, func(*sql.DB) repository.TabGroupRepository {
		bound++
		return inner
	})
	ctx := context.Background()
	inner.EXPECT().List(ctx, repository.NewestFirst).Return(nil, nil).Once()
	inner.EXPECT().Get(ctx, entity.TabGroupID("x")).Return(nil, nil).Once()

	_, err := repo.List(ctx, repository.NewestFirst)
	require.ErrorIs(t, err, repository.ErrUnavailable)
	assert.Equal(t, 0, bound)

	fail = false
	groups, err := repo.List(ctx, repository.NewestFirst)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, 1, bound)

	got, err := repo.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, bound, "repository is bound once")
}
