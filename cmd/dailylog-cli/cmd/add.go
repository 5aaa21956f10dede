package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
)

var (
	addCategory string
	addDate     string
	addCopy     bool
)

var addCmd = &cobra.Command{
	Use:   "add <item>...",
	Short: "Append an item to a day",
	Long: `Append a timestamped item to a category of a day. The day is created
from the template when it does not exist yet.

Categories: ` + domain.CategoryNames() + ` (aliases: work, personal, scrap, idea)

Examples:
  dailylog-cli add -s 회사 "kickoff with [[Project A]]"
  dailylog-cli add -s idea automate the weekly report
  dailylog-cli add -s personal -d yesterday went running --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addCmd := commands.NewAddItemCommand(GetStore(), addDate, addCategory, strings.Join(args, " "))
		addCmd.Now = now
		if err := addCmd.Validate(); err != nil {
			return err
		}

		result, err := addCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)

		if addCopy {
			if err := clipboard.WriteAll(result.Line); err != nil {
				slog.Warn("failed to copy to clipboard", "error", err)
			}
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "section", "s", "", "category (회사, 개인, 스크랩, 아이디어 or an alias)")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "day to add to (default today)")
	addCmd.Flags().BoolVar(&addCopy, "copy", false, "copy the inserted line to the clipboard")
	_ = addCmd.MarkFlagRequired("section")
	rootCmd.AddCommand(addCmd)
}
