package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
)

var (
	listJSON  bool
	listPlain bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored tab groups, newest first",
	Long: `List every stored tab group, most recently created first.

Use --json for the stored record format, or --plain for a
tab-separated table suited to scripts.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output stored records as JSON")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "output a plain table")
}

func runList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	groups, err := app.Store.ListAll(app.Ctx())
	if err != nil {
		return fmt.Errorf("list tab groups: %w", err)
	}

	switch {
	case listJSON:
		return outputRecordsJSON(groups)
	case listPlain:
		return outputGroupsTable(groups)
	default:
		fmt.Println(app.Renderer.RenderList(groups))
		return nil
	}
}

func outputRecordsJSON(groups []*entity.TabGroup) error {
	records := make([]persistence.Record, 0, len(groups))
	for _, g := range groups {
		records = append(records, persistence.ToRecord(g))
	}
	return printJSON(records)
}

func outputGroupsTable(groups []*entity.TabGroup) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tTABS\tCREATED\tUPDATED")
	for _, g := range groups {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			g.ID,
			g.Name,
			g.TabCount(),
			g.CreatedAt.Local().Format(time.DateTime),
			g.UpdatedAt.Local().Format(time.DateTime),
		)
	}
	return w.Flush()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
