package jsonfile

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/data/tabstash/tab-groups.json"

func TestStore_EmptyWhenFileMissing(t *testing.T) {
	s := New(afero.NewMemMapFs(), testPath)

	groups, err := s.List(context.Background(), repository.NewestFirst)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)

	got, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutOverwritesByID(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	s := New(fsys, testPath)

	created := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	g := entity.NewTabGroup(entity.TabGroupParams{
		ID: "g1", Name: "first", CreatedAt: created, UpdatedAt: created,
		Tabs: []entity.TabSnapshot{{ID: 1, URL: "https://a", Title: "A"}},
	})
	require.NoError(t, s.Put(ctx, g))

	g.Rename("second")
	require.NoError(t, s.Put(ctx, g))

	groups, err := s.List(ctx, repository.NewestFirst)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "second", groups[0].Name)
	assert.True(t, groups[0].CreatedAt.Equal(created))

	data, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, documentVersion, doc.Version)

	exists, err := afero.Exists(fsys, testPath+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file must be renamed away")
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(afero.NewMemMapFs(), testPath)

	g := entity.NewTabGroup(entity.TabGroupParams{ID: "g1"})
	require.NoError(t, s.Put(ctx, g))

	require.NoError(t, s.Delete(ctx, g.ID))
	require.NoError(t, s.Delete(ctx, g.ID))

	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New(afero.NewMemMapFs(), testPath)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []entity.TabGroupID{"old", "mid", "new"} {
		at := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Put(ctx, entity.NewTabGroup(entity.TabGroupParams{ID: id, CreatedAt: at, UpdatedAt: at})))
	}

	groups, err := s.List(ctx, repository.NewestFirst)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, entity.TabGroupID("new"), groups[0].ID)
	assert.Equal(t, entity.TabGroupID("old"), groups[2].ID)
}

func TestStore_CorruptFileIsUnavailable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte("{broken"), 0o600))
	s := New(fsys, testPath)

	_, err := s.List(context.Background(), repository.NewestFirst)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestStore_ReadOnlyFsFailsWrite(t *testing.T) {
	s := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), testPath)

	err := s.Put(context.Background(), entity.NewTabGroup(entity.TabGroupParams{}))
	assert.Error(t, err)
}
