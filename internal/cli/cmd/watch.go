package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/application/port"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print a line whenever the tab group store changes",
	Long: `Follow the change signal shared by every tabstash process and print
one line per change until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.Signal == nil {
		return fmt.Errorf("change notifications are disabled (notify.disabled = true)")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, app.Theme.Subtle.Render("watching "+app.Signal.Path()))
	return app.Signal.Watch(ctx, func(s port.ChangeSignal) {
		fmt.Println(app.Renderer.RenderChange(string(s), time.Now()))
	})
}
