package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check [year]",
	Short: "Validate a year document against the day template",
	Long: `Report days with a wrong weekday label, a missing category heading,
a duplicate date, or dates that are not in descending order. Exits
non-zero when issues are found.

Examples:
  dailylog-cli check
  dailylog-cli check 2025`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := yearArg(args)
		if err != nil {
			return err
		}

		checkCmd := commands.NewCheckCommand(GetStore(), year)
		result, err := checkCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Issues) == 0 {
			fmt.Fprintf(out, "%s: %d days, no issues\n", result.Path, result.Days)
			return nil
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("DATE", "KIND", "ISSUE")
		for _, issue := range result.Issues {
			tbl.AddRow(issue.Date, issue.Kind, issue.Message)
		}
		fmt.Fprintln(out, tbl)

		return fmt.Errorf("%s: %d issues in %d days", result.Path, len(result.Issues), result.Days)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
