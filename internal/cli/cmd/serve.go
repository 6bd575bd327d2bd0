package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/infrastructure/broadcast"
	"github.com/bnema/tabstash/internal/infrastructure/httpapi"
	"github.com/bnema/tabstash/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tab group store over a local HTTP API",
	Long: `Serve the tab group store over HTTP.

Routes:
  GET    /healthz
  GET    /api/tab-groups
  POST   /api/tab-groups
  GET    /api/tab-groups/{id}
  PUT    /api/tab-groups/{id}
  DELETE /api/tab-groups/{id}
  GET    /api/events          server-sent change events

Changes made by the native host or the CLI are streamed on /api/events.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, defaults to config http.addr")
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "http")
	log := logging.FromContext(ctx)

	addr := serveAddr
	if addr == "" {
		addr = app.Config.HTTP.Addr
	}

	bus := broadcast.NewBus()
	store := app.NewStore(app.SignalNotifiers(bus)...)
	router := httpapi.NewRouter(store, httpapi.Options{
		AllowedOrigins: app.Config.HTTP.AllowedOrigins,
		Logger:         *log,
		Bus:            bus,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.Serve(gctx, addr, router)
	})
	if app.Signal != nil {
		g.Go(func() error {
			return app.Signal.WatchOthers(gctx, func(s port.ChangeSignal) {
				_ = bus.Publish(gctx, s)
			})
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
