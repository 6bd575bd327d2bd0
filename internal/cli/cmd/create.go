package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/domain/entity"
	tabsurl "github.com/bnema/tabstash/internal/domain/url"
)

var (
	createName string
	createURLs []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Store a new tab group from URLs",
	Long: `Store a new tab group built from the given URLs, in order.

Examples:
  tabstash create --name Reading --url go.dev --url https://pkg.go.dev

Bare hosts get an https:// prefix.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "group name")
	createCmd.Flags().StringArrayVarP(&createURLs, "url", "u", nil, "tab URL (repeatable)")
	_ = createCmd.MarkFlagRequired("url")
}

func runCreate(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	tabs := make([]entity.TabSnapshot, 0, len(createURLs))
	for i, raw := range createURLs {
		u := tabsurl.Normalize(raw)
		if u == "" {
			continue
		}
		if !entity.IsRestorableURL(u) {
			return fmt.Errorf("%s cannot be reopened by the browser", u)
		}
		title := tabsurl.ExtractDomain(u)
		if title == "" {
			title = u
		}
		tabs = append(tabs, entity.TabSnapshot{ID: i + 1, URL: u, Title: title})
	}
	if len(tabs) == 0 {
		return fmt.Errorf("at least one non-empty --url is required")
	}

	group := entity.NewTabGroup(entity.TabGroupParams{
		Name: strings.TrimSpace(createName),
		Tabs: tabs,
	})
	saved, err := app.Store.Save(app.Ctx(), group)
	if err != nil {
		return fmt.Errorf("create tab group: %w", err)
	}

	fmt.Println(app.Renderer.RenderSaved(saved))
	return nil
}
