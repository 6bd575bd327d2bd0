package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/postgres"
	"github.com/bnema/tabstash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set TABSTASH_TEST_POSTGRES_DSN to run against a disposable database.
func testDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TABSTASH_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TABSTASH_TEST_POSTGRES_DSN not set")
	}
	return dsn
}

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestTabGroupRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	db, err := postgres.NewConnection(ctx, testDSN(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), `DELETE FROM tab_groups WHERE id LIKE 'pgtest-%'`)
		_ = db.Close()
	})
	repo := postgres.NewTabGroupRepository(db)

	created := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	g := entity.NewTabGroup(entity.TabGroupParams{
		ID:        "pgtest-1",
		Name:      "shared",
		Tabs:      []entity.TabSnapshot{{ID: 1, URL: "https://go.dev", Title: "Go"}},
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, repo.Put(ctx, g))

	got, err := repo.Get(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, g.Tabs, got.Tabs)

	groups, err := repo.List(ctx, repository.NewestFirst)
	require.NoError(t, err)
	assert.NotEmpty(t, groups)

	require.NoError(t, repo.Delete(ctx, g.ID))
	require.NoError(t, repo.Delete(ctx, g.ID))
	got, err = repo.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewLazyDB_EmptyDSNIsUnavailable(t *testing.T) {
	repo := postgres.NewLazyTabGroupRepository(postgres.NewLazyDB(""))

	_, err := repo.Get(testCtx(), "x")
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
