package textmcp

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultName    = "textmcp"
	defaultVersion = "1.0.0"
)

// New creates a new MCP handler with the given options
func New(opts ...Option) (*Handler, error) {
	cfg := &handlerConfig{
		name:    defaultName,
		version: defaultVersion,
		tools:   make([]toolRegistration, 0),
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	names := make([]string, 0, len(cfg.tools))
	seen := make(map[string]struct{}, len(cfg.tools))
	for _, reg := range cfg.tools {
		if _, ok := seen[reg.name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, reg.name)
		}
		seen[reg.name] = struct{}{}
		names = append(names, reg.name)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Create a new MCP server if not provided
	if cfg.server == nil {
		impl := &mcp.Implementation{
			Name:    cfg.name,
			Version: cfg.version,
		}
		cfg.server = mcp.NewServer(impl, nil)
	}
	cfg.server.AddReceivingMiddleware(loggingMiddleware(cfg.logger))

	for _, reg := range cfg.tools {
		reg.register(cfg.server)
	}

	getServer := func(*http.Request) *mcp.Server { return cfg.server }

	cfg.logger.Debug("handler created",
		"name", cfg.name,
		"version", cfg.version,
		"tools", names,
	)

	return &Handler{
		server:      cfg.server,
		tools:       names,
		logger:      cfg.logger,
		httpHandler: mcp.NewStreamableHTTPHandler(getServer, nil),
		sseHandler:  mcp.NewSSEHandler(getServer, nil),
	}, nil
}
