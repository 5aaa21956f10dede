package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"dailylog/internal/adapters/filesystem"
	"dailylog/internal/adapters/sqlite"
	"dailylog/internal/application/commands"
	"dailylog/internal/config"
	"dailylog/internal/logging"
)

var (
	cfgFile string
	v       = config.New()
	cfg     *config.Config
	store   *filesystem.Store

	// now is the clock every command resolves relative dates against
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "dailylog-cli",
	Short: "CLI for the yearly daily log documents of an Obsidian vault",
	Long: `dailylog-cli reads and appends to the Korean daily log kept in an
Obsidian vault, one Markdown document per year:

  #### 2026-01-10 (토)
  ##### 회사
  - 2026-01-10 09:00:00 kickoff [[Project A]]

Every day carries the categories 회사, 개인, 스크랩 and 아이디어
(aliases: work, personal, scrap, idea).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}
		return initialize()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.dailylog.yaml)")
	pf.StringP("vault", "v", config.VaultPath(), "path to the vault")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")

	_ = v.BindPFlag(config.KeyVault, pf.Lookup("vault"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
}

func initialize() error {
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	logging.Init(false, logging.ParseLevel(cfg.LogLevel))
	if cfg.File != "" {
		slog.Debug("using config file", "path", cfg.File)
	}

	s, err := filesystem.NewStore(cfg.Vault, cfg.PathPattern)
	if err != nil {
		return err
	}
	store = s
	return nil
}

// GetStore returns the initialized log store
func GetStore() *filesystem.Store {
	return store
}

// OpenIndex opens the link index and brings it up to date with the documents.
// Callers close the returned index.
func OpenIndex(ctx context.Context) (*sqlite.Index, error) {
	idx := sqlite.NewIndex(store)
	if err := idx.Open(cfg.IndexPath); err != nil {
		return nil, err
	}
	if _, err := commands.NewSyncIndexCommand(idx, false).Execute(ctx); err != nil {
		idx.Close()
		return nil, err
	}
	return idx, nil
}

// rangeFlags registers the interval flags shared by read, summary and export
func rangeFlags(cmd *cobra.Command, spec *commands.RangeSpec) {
	cmd.Flags().StringVar(&spec.From, "from", "", "start date (today, yesterday, YYYY-MM-DD or MM-DD)")
	cmd.Flags().StringVar(&spec.To, "to", "", "end date")
	cmd.Flags().BoolVar(&spec.Week, "week", false, "current week, Monday to Sunday")
	cmd.Flags().BoolVar(&spec.Month, "month", false, "current month")
}

// yearArg parses an optional year argument, defaulting to the current year
func yearArg(args []string) (int, error) {
	if len(args) == 0 {
		return now().Year(), nil
	}
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1000 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return year, nil
}
