package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/curlylint/site/internal/logging"
	"github.com/curlylint/site/internal/site"
)

var siteConfigPath string

var rootCmd = &cobra.Command{
	Use:   "curlysite-cli",
	Short: "curlylint website tooling",
	Long: `curlysite-cli builds the curlylint documentation website.

Available commands:
  build      Export the site as static HTML
  rules      Generate the rule docs pages and sidebar
  version    Print the version

Use "curlysite-cli [command] --help" for more information about a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteConfigPath, "site", os.Getenv("SITE_CONFIG"),
		"path to the site YAML (defaults to the embedded content)")
}

func loadSite() (*site.Site, error) {
	return site.Load(afero.NewOsFs(), siteConfigPath)
}
