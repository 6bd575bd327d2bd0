package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
)

var restoreRemove bool

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Print the URLs of a tab group for reopening",
	Long: `Print the URLs of a tab group, one per line.

Windows can only be opened by the extension; from a terminal the URLs are
printed so they can be piped to a browser. With --remove the group is
deleted afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().BoolVar(&restoreRemove, "remove", false, "delete the group after printing it")
}

func runRestore(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	group, err := app.Store.FindByID(app.Ctx(), entity.TabGroupID(args[0]))
	if err != nil {
		return fmt.Errorf("restore %s: %w", args[0], err)
	}
	if len(group.Tabs) == 0 {
		return fmt.Errorf("restore %s: %w", args[0], usecase.ErrEmptyTabGroup)
	}

	fmt.Fprintln(os.Stderr, app.Renderer.RenderRestoreHint(group))
	for _, u := range group.URLs() {
		fmt.Println(u)
	}

	if restoreRemove {
		if _, err := app.Store.Destroy(app.Ctx(), group); err != nil {
			return fmt.Errorf("remove %s: %w", args[0], err)
		}
	}
	return nil
}
