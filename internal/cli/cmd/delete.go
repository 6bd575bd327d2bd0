package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/domain/entity"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete tab groups",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var errs []error
	for _, arg := range args {
		id := entity.TabGroupID(arg)
		if _, err := app.Store.Destroy(app.Ctx(), &entity.TabGroup{ID: id}); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", id, err))
			continue
		}
		fmt.Println(app.Renderer.RenderDeleted(id))
	}
	return errors.Join(errs...)
}
