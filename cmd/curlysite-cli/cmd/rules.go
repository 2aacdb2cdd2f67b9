package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/curlylint/site/internal/export"
	"github.com/curlylint/site/internal/storage"
)

var (
	rulesOutDir       string
	rulesOutputFormat string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Generate the rule docs pages and sidebar",
	Long: `Write one markdown page per rule, the "All rules" index and the
rules sidebar module used by the docs build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		files, err := export.WriteRuleDocs(cmd.Context(), storage.NewDirStore(rulesOutDir), s.Rules, time.Now())
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the documented rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch rulesOutputFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(s.Rules)
		case "table":
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tIMPACT\tDESCRIPTION")
			for _, r := range s.Rules {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.TypeLabel(), r.Impact, r.Description)
			}
			return tw.Flush()
		default:
			return fmt.Errorf("invalid format %q: valid formats are table, json", rulesOutputFormat)
		}
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOutDir, "out", "o", ".", "output directory")
	rulesListCmd.Flags().StringVar(&rulesOutputFormat, "format", "table", "output format: table or json")
	rulesCmd.AddCommand(rulesListCmd)
	rootCmd.AddCommand(rulesCmd)
}
