// Package cmd provides Cobra CLI commands for tabstash.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/cli"
	"github.com/bnema/tabstash/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tabstash",
		Short: "Suspend browser windows into named tab groups and restore them later",
		Long: `tabstash keeps suspended browser windows as named tab groups.

The browser extension talks to 'tabstash host' over native messaging:
suspending a window saves its tabs as a group and closes it, restoring a
group reopens its tabs in a new window. Every change is announced to the
extension and to other tabstash processes.

The remaining subcommands inspect and edit the same store from a terminal,
or expose it over a local HTTP API with 'tabstash serve'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if isNativeHostInvocation(os.Args[1:]) {
		rootCmd.SetArgs(append([]string{"host"}, os.Args[1:]...))
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
