// Command textmcp serves the process_text MCP tool over stdio or HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// cli is the full command line, flags can also be set from TEXTMCP_* variables
type cli struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"info" env:"TEXTMCP_LOG_LEVEL"`
	LogFormat string `help:"Log output format" enum:"text,json" default:"text" env:"TEXTMCP_LOG_FORMAT"`

	Serve   serveCmd   `cmd:"" default:"1" help:"Serve the process_text tool over MCP"`
	Process processCmd `cmd:"" help:"Process a text locally and print the result as JSON"`
}

// runContext carries process-wide dependencies into command Run methods
type runContext struct {
	ctx    context.Context
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("textmcp"),
		kong.Description("MCP server exposing the process_text tool."),
		kong.UsageOnError(),
	)

	// stdout belongs to the stdio transport, logs go to stderr
	logger, err := newLogger(os.Stderr, c.LogLevel, c.LogFormat)
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&runContext{
		ctx:    ctx,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	})
	if err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
