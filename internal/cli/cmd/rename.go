package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/domain/entity"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a tab group",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	group, err := app.Store.FindByID(app.Ctx(), entity.TabGroupID(args[0]))
	if err != nil {
		return fmt.Errorf("rename %s: %w", args[0], err)
	}

	group.Rename(nameFromArgs(args[1:]))
	saved, err := app.Store.Save(app.Ctx(), group)
	if err != nil {
		return fmt.Errorf("rename %s: %w", args[0], err)
	}

	fmt.Println(app.Renderer.RenderRenamed(saved))
	return nil
}

// nameFromArgs joins the words of an unquoted name and trims the result.
func nameFromArgs(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}
