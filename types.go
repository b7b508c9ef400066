// Package textmcp exposes a text processing tool over the Model Context Protocol
package textmcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option is a functional option for configuring handlers
type Option func(*handlerConfig) error

// ToolOption customizes the tool definition advertised to clients
type ToolOption func(*mcp.Tool) error

// ToolFunc is the function signature for typed tools with automatic schema generation.
// The function receives a context and typed input, and returns typed output with an optional error.
// Schemas are inferred from TIn and TOut unless overridden with a ToolOption.
type ToolFunc[TIn, TOut any] func(context.Context, TIn) (TOut, error)

// handlerConfig holds the configuration built by options
type handlerConfig struct {
	name    string
	version string
	tools   []toolRegistration
	server  *mcp.Server // The MCP-SDK server instance
	logger  *slog.Logger
}

// toolRegistration defers adding a tool until the server exists
type toolRegistration struct {
	name     string
	register func(*mcp.Server)
}
