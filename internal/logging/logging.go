package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init sets the default slog logger. Output always goes to stderr so that
// stdout stays free for command output and the MCP stdio protocol.
// jsonOutput selects the JSON handler, used by the MCP server.
func Init(jsonOutput bool, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, jsonOutput, level)))
}

// NewHandler builds the handler Init installs, writing to w
func NewHandler(w io.Writer, jsonOutput bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelWarn, the level the CLI runs at.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
