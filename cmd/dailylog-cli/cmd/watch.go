package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dailylog/internal/adapters/watcher"
	"dailylog/internal/application/commands"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the link index in sync while the documents change",
	Long: `Watch the directories holding the year documents and re-index a
document whenever it is written. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		idx, err := OpenIndex(ctx)
		if err != nil {
			return err
		}
		defer idx.Close()

		w, err := watcher.New(GetStore())
		if err != nil {
			return err
		}
		if len(w.Dirs()) == 0 {
			return fmt.Errorf("no year documents found under %s", GetStore().VaultPath())
		}

		out := cmd.OutOrStdout()
		for _, dir := range w.Dirs() {
			fmt.Fprintf(out, "watching %s\n", dir)
		}

		go w.Start(ctx)

		for ev := range w.Events {
			stats, err := commands.NewSyncIndexCommand(idx, false).Execute(ctx)
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				slog.Error("index sync failed", "year", ev.Year, "error", err)
				continue
			}
			fmt.Fprintf(out, "%d: %d files updated, %d links added, %d removed\n",
				ev.Year, stats.FilesUpdated, stats.LinksAdded, stats.LinksDeleted)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
