package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dailylog/internal/adapters/editor"
	"dailylog/internal/adapters/filesystem"
	"dailylog/internal/adapters/obsidian"
	"dailylog/internal/adapters/tui"
	"dailylog/internal/adapters/watcher"
	"dailylog/internal/config"
	"dailylog/internal/logging"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (default $DAILYLOG_VAULT or the config file)")
	configFlag := flag.String("config", "", "config file (default $HOME/.dailylog.yaml)")
	copyFlag := flag.Bool("copy", false, "copy every added line to the clipboard")
	logFile := flag.String("log-file", "", "write logs to this file; the terminal belongs to the UI")
	flag.Parse()

	if err := run(*vaultFlag, *configFlag, *logFile, *copyFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(vault, cfgFile, logFile string, copyOnAdd bool) error {
	v := config.New()
	if vault != "" {
		v.Set(config.KeyVault, vault)
	}
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "")
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(logging.NewHandler(logOut, false, logging.ParseLevel(cfg.LogLevel))))

	store, err := filesystem.NewStore(cfg.Vault, cfg.PathPattern)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := tui.Options{
		Editor:    editor.NewOpener(),
		Obsidian:  obsidian.NewOpener(store.VaultPath()),
		CopyOnAdd: copyOnAdd,
	}
	if w, err := watcher.New(store); err != nil {
		slog.Warn("live reload disabled", "error", err)
	} else {
		go w.Start(ctx)
		opts.Changes = w.Events
	}

	app := tui.NewApp(store, opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
