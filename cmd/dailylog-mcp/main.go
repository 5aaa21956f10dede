package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dailylog/internal/adapters/filesystem"
	mcpadapter "dailylog/internal/adapters/mcp"
	"dailylog/internal/adapters/sqlite"
	"dailylog/internal/adapters/watcher"
	"dailylog/internal/application/commands"
	"dailylog/internal/config"
	"dailylog/internal/logging"
	"dailylog/internal/ports"
)

var version = "dev"

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (default $DAILYLOG_VAULT or the config file)")
	configFlag := flag.String("config", "", "config file (default $HOME/.dailylog.yaml)")
	httpFlag := flag.String("http", "", "serve streamable HTTP on this address instead of stdio, e.g. 127.0.0.1:8765")
	pathFlag := flag.String("http-path", "/mcp", "endpoint path for the HTTP transport")
	noIndex := flag.Bool("no-index", false, "do not open the link index; backlinks and links tools are disabled")
	flag.Parse()

	v := config.New()
	if *vaultFlag != "" {
		v.Set(config.KeyVault, *vaultFlag)
	}
	cfg, err := config.Load(v, *configFlag)
	if err != nil {
		log.Fatalf("dailylog-mcp: %v", err)
	}

	// stdout belongs to the stdio transport
	logging.Init(true, logging.ParseLevel(cfg.LogLevel))

	store, err := filesystem.NewStore(cfg.Vault, cfg.PathPattern)
	if err != nil {
		log.Fatalf("dailylog-mcp: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := mcpadapter.Runner{
		Store:   store,
		Version: version,
	}
	if !*noIndex {
		if idx := openIndex(ctx, store, cfg.IndexPath); idx != nil {
			defer idx.Close()
			runner.Index = idx
			go syncOnChange(ctx, store, idx)
		}
	}

	if addr := strings.TrimSpace(*httpFlag); addr != "" {
		path := strings.TrimSpace(*pathFlag)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		runner.Transport = mcpadapter.TransportHTTP
		runner.HTTPListenAddr = addr
		runner.HTTPEndpointPath = path
		runner.OnHTTPListening = func(a net.Addr) {
			fmt.Fprintf(os.Stderr, "MCP HTTP server listening on %s%s\n", a, path)
		}
	}

	if err := runner.Do(ctx); err != nil {
		log.Fatalf("dailylog-mcp: %v", err)
	}
}

// openIndex opens and syncs the link index. Failures only disable the link tools.
func openIndex(ctx context.Context, store ports.LogStore, path string) *sqlite.Index {
	idx := sqlite.NewIndex(store)
	if err := idx.Open(path); err != nil {
		slog.Warn("link index unavailable", "error", err)
		return nil
	}
	stats, err := commands.NewSyncIndexCommand(idx, false).Execute(ctx)
	if err != nil {
		slog.Warn("link index sync failed", "error", err)
		idx.Close()
		return nil
	}
	slog.Info("link index ready", "path", idx.Path(), "files_updated", stats.FilesUpdated)
	return idx
}

// syncOnChange re-indexes a year document whenever it changes on disk
func syncOnChange(ctx context.Context, store *filesystem.Store, idx *sqlite.Index) {
	w, err := watcher.New(store)
	if err != nil {
		slog.Warn("document watcher unavailable", "error", err)
		return
	}
	go w.Start(ctx)

	for ev := range w.Events {
		if _, err := commands.NewSyncIndexCommand(idx, false).Execute(ctx); err != nil {
			slog.Warn("link index sync failed", "year", ev.Year, "error", err)
		}
	}
}
