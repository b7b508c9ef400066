package textmcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// loggingMiddleware logs every request the server receives with a call ID
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			attrs := []any{
				"call_id", uuid.NewString(),
				"method", method,
			}
			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, "tool", call.Params.Name)
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			attrs = append(attrs, "duration", time.Since(start))

			if err != nil {
				logger.WarnContext(ctx, "request failed", append(attrs, "error", err)...)
				return result, err
			}
			if res, ok := result.(*mcp.CallToolResult); ok && res.IsError {
				logger.WarnContext(ctx, "tool returned error", attrs...)
				return result, err
			}

			logger.DebugContext(ctx, "request handled", attrs...)
			return result, err
		}
	}
}
