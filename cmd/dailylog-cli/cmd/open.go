package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dailylog/internal/adapters/editor"
	"dailylog/internal/adapters/obsidian"
	"dailylog/internal/domain"
)

var openCmd = &cobra.Command{
	Use:   "open [date]",
	Short: "Open a day in Obsidian",
	Long: `Open the year document in Obsidian, scrolled to the heading of the day
(default today).

Examples:
  dailylog-cli open
  dailylog-cli open yesterday`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateArg(args)
		if err != nil {
			return err
		}

		content, err := GetStore().Read(date.Year())
		if err != nil {
			return err
		}

		var heading string
		if line, ok := domain.DayLine(content, date); ok {
			heading = strings.Split(content, "\n")[line-1]
		}

		return obsidian.NewOpener(GetStore().VaultPath()).OpenFile(GetStore().Path(date.Year()), heading)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Open a day in $EDITOR",
	Long: `Open the year document in $EDITOR at the heading of the day (default
today). Editors that accept +LINE or --goto start on that line.

Examples:
  dailylog-cli edit
  dailylog-cli edit 01-08`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateArg(args)
		if err != nil {
			return err
		}

		content, err := GetStore().Read(date.Year())
		if err != nil {
			return err
		}
		line, ok := domain.DayLine(content, date)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "no entry for %s, opening the top of the document\n", domain.FormatDate(date))
		}

		return editor.NewOpener().OpenFile(GetStore().Path(date.Year()), line)
	},
}

// dateArg resolves an optional date argument, defaulting to today
func dateArg(args []string) (time.Time, error) {
	token := "today"
	if len(args) == 1 {
		token = args[0]
	}
	return domain.ParseDate(token, now())
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(editCmd)
}
