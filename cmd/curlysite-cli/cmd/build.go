package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curlylint/site/internal/export"
	"github.com/curlylint/site/internal/highlight"
	"github.com/curlylint/site/internal/storage"
)

var (
	buildOutDir string
	buildDark   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long: `Render every page of the site to static HTML files.

Snippets are rendered once with the chosen theme; static pages do not
remount on the client.

Examples:
  curlysite-cli build --out dist
  curlysite-cli build --out dist --dark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		x := export.New(storage.NewDirStore(buildOutDir), highlight.NewChromaTokenizer(), buildDark)
		pages, err := x.Export(cmd.Context(), s)
		if err != nil {
			return err
		}
		for _, p := range pages {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "dist", "output directory")
	buildCmd.Flags().BoolVar(&buildDark, "dark", false, "render snippets with the dark theme")
	rootCmd.AddCommand(buildCmd)
}
