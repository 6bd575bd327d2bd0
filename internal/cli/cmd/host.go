package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabstash/internal/application/port"
	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/infrastructure/nativemsg"
	"github.com/bnema/tabstash/internal/logging"
)

var hostBrowser string

var hostCmd = &cobra.Command{
	Use:   "host [browser arguments]",
	Short: "Run as the browser's native messaging host",
	Long: `Run the native messaging host on stdin and stdout.

Browsers start the host themselves; the extension then sends tab group
requests and receives change events over the same pipe. Arguments passed
by the browser (the calling extension's origin, or the manifest path and
extension ID on Firefox) are used to pick the browser family when
--browser is not set.

Logs go to stderr only; stdout carries framed messages.`,
	Args: cobra.ArbitraryArgs,
	// Chromium on some platforms appends flags of its own.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE:               runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
	hostCmd.Flags().StringVar(&hostBrowser, "browser", "", "browser family (chromium or firefox), defaults to config")
}

func runHost(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "host")
	log := logging.FromContext(ctx)

	browser := resolveBrowserFamily(hostBrowser, app.Config.Host.Browser, args)

	conn := nativemsg.NewConn(os.Stdin, os.Stdout, app.RequestTimeout())
	extension := nativemsg.NewNotifier(conn)
	store := app.NewStore(app.SignalNotifiers(extension)...)
	gateway := usecase.NewWindowGateway(nativemsg.NewWindowHost(conn), browser)
	suspend := usecase.NewSuspendWindowUseCase(gateway, store, app.Config.Suspend.NameFormat)
	restore := usecase.NewRestoreTabGroupUseCase(gateway, store, app.Config.Suspend.RemoveAfterRestore)
	handlers := nativemsg.NewHandlers(store, suspend, restore, app.BuildInfo.Version)

	log.Info().
		Str("browser", string(browser)).
		Str("driver", string(app.Config.Database.Driver)).
		Msg("native messaging host started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := conn.Serve(gctx, handlers.Handle)
		// The browser closing stdin ends the session.
		stop()
		return err
	})
	if app.Signal != nil {
		g.Go(func() error {
			return app.Signal.WatchOthers(gctx, func(s port.ChangeSignal) {
				if err := extension.Publish(gctx, s); err != nil && !errors.Is(err, nativemsg.ErrClosed) {
					log.Debug().Err(err).Msg("forward change to extension failed")
				}
			})
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("native host: %w", err)
	}
	log.Info().Msg("native messaging host stopped")
	return nil
}

// resolveBrowserFamily prefers the flag, then the caller's arguments, then config.
// Chromium passes the extension origin; Firefox passes the manifest path and
// the extension ID.
func resolveBrowserFamily(flag, configured string, args []string) port.BrowserFamily {
	if flag != "" {
		return port.ParseBrowserFamily(flag)
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "chrome-extension://") {
			return port.BrowserChromium
		}
		if strings.HasSuffix(arg, ".json") || strings.Contains(arg, "@") {
			return port.BrowserFirefox
		}
	}
	return port.ParseBrowserFamily(configured)
}

// isNativeHostInvocation reports whether the process was started by a browser
// rather than a user: browsers pass the extension origin or manifest path as
// the first argument and cannot name a subcommand.
func isNativeHostInvocation(args []string) bool {
	if len(args) == 0 {
		return false
	}
	first := args[0]
	return strings.HasPrefix(first, "chrome-extension://") ||
		(strings.HasSuffix(first, ".json") && len(args) >= 2)
}
