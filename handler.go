package textmcp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler is the main MCP handler struct
type Handler struct {
	server      *mcp.Server
	tools       []string
	logger      *slog.Logger
	httpHandler http.Handler
	sseHandler  http.Handler
}

// GetServer returns the underlying MCP server for advanced usage
func (h *Handler) GetServer() *mcp.Server {
	return h.server
}

// Tools returns the registered tool names in registration order
func (h *Handler) Tools() []string {
	return slices.Clone(h.tools)
}

// ServeHTTP implements http.Handler for the streamable HTTP transport
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.httpHandler.ServeHTTP(w, r)
}

// ServeSSE serves the legacy HTTP+SSE transport
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	h.sseHandler.ServeHTTP(w, r)
}

// ServeStdio runs the server over stdin/stdout until the client disconnects
// or ctx is cancelled.
func (h *Handler) ServeStdio(ctx context.Context) error {
	return h.serve(ctx, &mcp.StdioTransport{})
}

func (h *Handler) serve(ctx context.Context, transport mcp.Transport) error {
	h.logger.Info("serving MCP", "tools", h.tools)
	err := h.server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// createTypedHandler converts a simple typed function into an MCP ToolHandlerFor.
//
// The returned function calls the user's tool with the decoded input and
// hands the typed output back to the SDK, which serializes it as structured
// content. Errors are returned unchanged: the SDK reports them to the client
// as a CallToolResult with IsError set, so a *ToolError's code and message
// reach the caller.
func createTypedHandler[TIn, TOut any](fn ToolFunc[TIn, TOut]) mcp.ToolHandlerFor[TIn, TOut] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TIn) (*mcp.CallToolResult, TOut, error) {
		output, err := fn(ctx, input)
		if err != nil {
			var zero TOut
			return nil, zero, err
		}
		return nil, output, nil
	}
}
