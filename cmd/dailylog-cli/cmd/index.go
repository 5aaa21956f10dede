package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"dailylog/internal/adapters/sqlite"
	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
)

var indexFull bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Update the link index",
	Long: `Bring the SQLite link index up to date with the year documents. Only
documents modified since the last run are re-indexed unless --full is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := sqlite.NewIndex(GetStore())
		if err := idx.Open(cfg.IndexPath); err != nil {
			return err
		}
		defer idx.Close()

		stats, err := commands.NewSyncIndexCommand(idx, indexFull).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files scanned, %d updated, %d deleted, %d links added, %d removed (%s)\n",
			idx.Path(), stats.FilesScanned, stats.FilesUpdated, stats.FilesDeleted,
			stats.LinksAdded, stats.LinksDeleted, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

var (
	linksDate  string
	linksLimit int
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the most linked notes, or the links of one day",
	Long: `Without --date, list the link targets referenced by the most items.
With --date, list every link written on that day.

Examples:
  dailylog-cli links
  dailylog-cli links --date yesterday`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var date string
		if linksDate != "" {
			d, err := domain.ParseDate(linksDate, now())
			if err != nil {
				return err
			}
			date = domain.FormatDate(d)
		}

		idx, err := OpenIndex(cmd.Context())
		if err != nil {
			return err
		}
		defer idx.Close()

		result, err := commands.NewLinksCommand(idx, date, linksLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if date != "" {
			printRefs(cmd, result.Refs)
			return nil
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("COUNT", "TARGET")
		for _, t := range result.Top {
			tbl.AddRow(t.Count, t.Target)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl)
		return nil
	},
}

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <target>",
	Short: "List the items linking to a note",
	Long: `List every item that links to a note, newest first. The target may be
given with or without brackets.

Examples:
  dailylog-cli backlinks "Project A"
  dailylog-cli backlinks "[[Project A]]"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := OpenIndex(cmd.Context())
		if err != nil {
			return err
		}
		defer idx.Close()

		refs, err := commands.NewBacklinksCommand(idx, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printRefs(cmd, refs)
		return nil
	},
}

func printRefs(cmd *cobra.Command, refs []domain.LinkRef) {
	if len(refs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No links found")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.AddRow("DATE", "CATEGORY", "TARGET", "ITEM")
	for _, r := range refs {
		tbl.AddRow(r.Date, r.Category, r.Target, commands.ItemText(r.Line))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
}

func init() {
	indexCmd.Flags().BoolVar(&indexFull, "full", false, "rebuild the index from scratch")
	linksCmd.Flags().StringVarP(&linksDate, "date", "d", "", "list the links of this day")
	linksCmd.Flags().IntVarP(&linksLimit, "limit", "n", commands.DefaultTopLinks, "number of targets to list")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(backlinksCmd)
}
