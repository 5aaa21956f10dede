package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
)

var readSpec commands.RangeSpec

var readCmd = &cobra.Command{
	Use:   "read [date]",
	Short: "Print the entries of a day or an interval",
	Long: `Print the raw Markdown of the days in an interval, oldest first.

Examples:
  dailylog-cli read
  dailylog-cli read yesterday
  dailylog-cli read 01-08
  dailylog-cli read --week
  dailylog-cli read --from 2026-01-01 --to 2026-01-10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := readSpec
		if len(args) == 1 {
			spec.Date = args[0]
		}

		start, end, err := spec.ResolveRead(now())
		if err != nil {
			return err
		}

		readCmd := commands.NewReadRangeCommand(GetStore(), start, end)
		result, err := readCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}

func init() {
	rangeFlags(readCmd, &readSpec)
	rootCmd.AddCommand(readCmd)
}
