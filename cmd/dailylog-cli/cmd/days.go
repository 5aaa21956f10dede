package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
)

var daysCmd = &cobra.Command{
	Use:   "days [year]",
	Short: "List the days of a year with item counts",
	Long: `List every day of a year document, newest first, with the number of
filled items per category and the number of links.

Examples:
  dailylog-cli days
  dailylog-cli days 2025`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := yearArg(args)
		if err != nil {
			return err
		}

		daysCmd := commands.NewDaysCommand(GetStore(), year)
		days, err := daysCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		header := []any{"DATE", "DAY"}
		for _, c := range domain.Categories {
			header = append(header, c.String())
		}
		tbl.AddRow(append(header, "LINKS", "")...)

		for _, d := range days {
			row := []any{d.Date, d.Weekday}
			for _, n := range d.Counts {
				row = append(row, n)
			}
			var note string
			if !d.WeekdayOK {
				note = fmt.Sprintf("weekday should be %s", domain.WeekdaySymbol(d.Entry.Date))
			}
			tbl.AddRow(append(row, d.Links, note)...)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tbl)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
}
