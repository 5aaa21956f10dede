package cmd

import (
	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
)

var (
	exportSpec   commands.RangeSpec
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an interval as JSON or YAML",
	Long: `Export the days of an interval as structured data, one record per day
with the items and links of every category. Without flags the current
week is exported.

Examples:
  dailylog-cli export --month
  dailylog-cli export --from 2026-01-01 --to 2026-01-31 --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := commands.ParseExportFormat(exportFormat)
		if err != nil {
			return err
		}
		start, end, err := exportSpec.ResolveSummary(now())
		if err != nil {
			return err
		}

		exportCmd := commands.NewExportCommand(GetStore(), start, end, format)
		out, err := exportCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rangeFlags(exportCmd, &exportSpec)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}
