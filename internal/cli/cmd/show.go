package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one tab group and its tabs",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the stored record as JSON")
}

func runShow(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	group, err := app.Store.FindByID(app.Ctx(), entity.TabGroupID(args[0]))
	if err != nil {
		return fmt.Errorf("show %s: %w", args[0], err)
	}

	if showJSON {
		return printJSON(persistence.ToRecord(group))
	}
	fmt.Print(app.Renderer.RenderGroup(group))
	return nil
}
