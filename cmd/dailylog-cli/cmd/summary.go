package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
)

var summarySpec commands.RangeSpec

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize an interval",
	Long: `Count the items per category and list the linked notes of an interval.
Without flags the current week is summarized.

Examples:
  dailylog-cli summary
  dailylog-cli summary --month
  dailylog-cli summary --from 01-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := summarySpec.ResolveSummary(now())
		if err != nil {
			return err
		}

		summaryCmd := commands.NewSummaryCommand(GetStore(), start, end)
		summary, err := summaryCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), summary.Markdown())
		return nil
	},
}

func init() {
	rangeFlags(summaryCmd, &summarySpec)
	rootCmd.AddCommand(summaryCmd)
}
