// Package cli wires configuration, storage and change notifiers for the
// tabstash commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/cli/styles"
	"github.com/bnema/tabstash/internal/domain/build"
	"github.com/bnema/tabstash/internal/domain/repository"
	"github.com/bnema/tabstash/internal/infrastructure/broadcast"
	"github.com/bnema/tabstash/internal/infrastructure/config"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/jsonfile"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/memory"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/postgres"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabstash/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	Renderer  *styles.TabGroupsCLIRenderer
	BuildInfo build.Info

	Repo repository.TabGroupRepository
	// Store announces mutations on Signal only. Host and serve build their own.
	Store *usecase.TabGroupStore
	// Signal is nil when cross-process notification is disabled.
	Signal *broadcast.FileSignal

	provider   port.DatabaseProvider
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and opens the configured store lazily.
func NewApp() (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return NewAppWithConfig(context.Background(), cfg)
}

// NewAppWithConfig builds an App from an already loaded configuration.
func NewAppWithConfig(parent context.Context, cfg *config.Config) (*App, error) {
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	ctx := logging.WithContext(parent, logger)

	repo, provider, err := openRepository(cfg.Database)
	if err != nil {
		logCleanup()
		return nil, err
	}
	logger.Debug().
		Str("driver", string(cfg.Database.Driver)).
		Str("path", cfg.Database.Path).
		Msg("tab group store configured")

	var signal *broadcast.FileSignal
	if !cfg.Notify.Disabled && cfg.Notify.SignalFile != "" {
		signal = broadcast.NewFileSignal(cfg.Notify.SignalFile)
	}

	theme := styles.NewTheme()
	app := &App{
		Config:     cfg,
		Theme:      theme,
		Renderer:   styles.NewTabGroupsCLIRenderer(theme),
		Repo:       repo,
		Signal:     signal,
		provider:   provider,
		ctx:        ctx,
		logCleanup: logCleanup,
	}
	app.Store = app.NewStore(app.signalNotifier()...)
	return app, nil
}

// NewStore builds a tab group store over the shared repository that
// publishes to the given notifiers.
func (a *App) NewStore(notifiers ...port.ChangeNotifier) *usecase.TabGroupStore {
	return usecase.NewTabGroupStore(a.Repo, broadcast.NewMulti(notifiers...))
}

// signalNotifier returns the file signal as a notifier list, empty when disabled.
func (a *App) signalNotifier() []port.ChangeNotifier {
	if a.Signal == nil {
		return nil
	}
	return []port.ChangeNotifier{a.Signal}
}

// SignalNotifiers returns extra plus the file signal when enabled.
func (a *App) SignalNotifiers(extra ...port.ChangeNotifier) []port.ChangeNotifier {
	return append(extra, a.signalNotifier()...)
}

// RequestTimeout is the host-to-browser call timeout.
func (a *App) RequestTimeout() time.Duration {
	return a.Config.Host.RequestTimeout
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.provider != nil {
		err = a.provider.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return config.Get(), nil
}

// openRepository selects the backend. SQL backends connect on first use so
// commands that never touch the store never open it.
func openRepository(cfg config.DatabaseConfig) (repository.TabGroupRepository, port.DatabaseProvider, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		lazy := sqlite.NewLazyDB(cfg.Path)
		return sqlite.NewLazyTabGroupRepository(lazy), lazy, nil
	case config.DriverPostgres:
		lazy := postgres.NewLazyDB(cfg.PostgresDSN)
		return postgres.NewLazyTabGroupRepository(lazy), lazy, nil
	case config.DriverJSONFile:
		return jsonfile.NewOS(cfg.Path), nil, nil
	case config.DriverMemory:
		return memory.New(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
