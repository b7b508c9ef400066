package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	textmcp "github.com/robbyt/go-textmcp"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	Transport string `help:"Transport to serve on" enum:"stdio,http" default:"stdio" env:"TEXTMCP_TRANSPORT"`
	Addr      string `help:"Listen address for the http transport" default:":8080" env:"TEXTMCP_ADDR"`
	Name      string `help:"Server name reported to clients" default:"textmcp" env:"TEXTMCP_NAME"`
	Version   string `help:"Server version reported to clients" default:"1.0.0" env:"TEXTMCP_VERSION"`
}

func (s *serveCmd) Run(rc *runContext) error {
	handler, err := textmcp.New(
		textmcp.WithName(s.Name),
		textmcp.WithVersion(s.Version),
		textmcp.WithLogger(rc.logger),
		textmcp.WithTextTools(),
	)
	if err != nil {
		return fmt.Errorf("failed to create MCP handler: %w", err)
	}

	if s.Transport == "http" {
		return serveHTTP(rc.ctx, rc.logger, s.Addr, newRouter(handler))
	}
	return handler.ServeStdio(rc.ctx)
}

// newRouter mounts the streamable HTTP and SSE transports plus a health check
func newRouter(handler *textmcp.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/mcp", handler)
	router.HandleFunc("/sse", handler.ServeSSE)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	}).Methods(http.MethodGet)
	return router
}

// serveHTTP runs an HTTP server until ctx is cancelled, then shuts it down
func serveHTTP(ctx context.Context, logger *slog.Logger, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP HTTP server starting",
			"addr", addr,
			"mcp", "/mcp",
			"sse", "/sse",
			"health", "/health",
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down MCP HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
