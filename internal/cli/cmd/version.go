package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabstash/internal/cli/styles"
	"github.com/bnema/tabstash/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		theme := styles.NewTheme()
		fmt.Printf("%s %s\n", theme.Highlight.Render(styles.IconVersion), theme.Title.Render("tabstash "+buildInfo.Version))
		if buildInfo.Commit != "" {
			fmt.Println(theme.Subtle.Render("commit  " + buildInfo.Commit))
		}
		if buildInfo.BuildDate != "" {
			fmt.Println(theme.Subtle.Render("built   " + buildInfo.BuildDate))
		}
		if buildInfo.GoVersion != "" {
			fmt.Printf("%s %s\n", theme.Subtle.Render(styles.IconGo), theme.Subtle.Render(buildInfo.GoVersion))
		}
		fmt.Println(theme.Subtle.Render(build.RepoURL()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
