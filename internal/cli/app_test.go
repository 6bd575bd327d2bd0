package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/infrastructure/config"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/memory"
)

func testConfig(t *testing.T, driver config.DatabaseDriver) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "error"
	cfg.Database.Driver = driver
	switch driver {
	case config.DriverJSONFile:
		cfg.Database.Path = filepath.Join(dir, "tab-groups.json")
	default:
		cfg.Database.Path = filepath.Join(dir, "tabstash.sqlite")
	}
	cfg.Notify.SignalFile = filepath.Join(dir, "changes.signal")
	return cfg
}

func TestOpenRepository_Drivers(t *testing.T) {
	repo, provider, err := openRepository(config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, repo)
	assert.Nil(t, provider)

	repo, provider, err = openRepository(config.DatabaseConfig{Driver: config.DriverJSONFile, Path: "/tmp/x.json"})
	require.NoError(t, err)
	assert.IsType(t, &jsonfile.Store{}, repo)
	assert.Nil(t, provider)

	_, provider, err = openRepository(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "/tmp/x.sqlite"})
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.False(t, provider.IsInitialized())

	_, _, err = openRepository(config.DatabaseConfig{Driver: "mongo"})
	require.Error(t, err)
}

func TestApp_SQLiteRoundTripTouchesSignal(t *testing.T) {
	cfg := testConfig(t, config.DriverSQLite)
	app, err := NewAppWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.Signal)
	assert.Equal(t, cfg.Notify.SignalFile, app.Signal.Path())

	group := entity.NewTabGroup(entity.TabGroupParams{
		Name: "Reading",
		Tabs: []entity.TabSnapshot{{ID: 1, URL: "https://go.dev", Title: "Go"}},
	})
	_, err = app.Store.Save(app.Ctx(), group)
	require.NoError(t, err)
	assert.FileExists(t, cfg.Notify.SignalFile)

	groups, err := app.Store.ListAll(app.Ctx())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Reading", groups[0].Name)
}

func TestApp_NotifyDisabled(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.Notify.Disabled = true

	app, err := NewAppWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.Signal)
	assert.Empty(t, app.SignalNotifiers())

	_, err = app.Store.Save(app.Ctx(), entity.NewTabGroup(entity.TabGroupParams{Name: "x"}))
	require.NoError(t, err)
	assert.NoFileExists(t, cfg.Notify.SignalFile)
}
