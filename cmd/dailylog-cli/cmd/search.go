package cmd

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Fuzzy search items across every year",
	Long: `Search the items and link targets of every year document. Results are
ranked by match quality, then by date, newest first.

Examples:
  dailylog-cli search kickoff
  dailylog-cli search "project a" --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		searchCmd := commands.NewSearchCommand(GetStore(), strings.Join(args, " "))
		searchCmd.Limit = searchLimit

		hits, err := searchCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 80
		tbl.AddRow("DATE", "CATEGORY", "ITEM")
		for _, h := range hits {
			tbl.AddRow(h.Date, h.Category, h.Text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
