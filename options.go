package textmcp

import (
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WithName sets the server name
func WithName(name string) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyName
		}
		cfg.name = name
		return nil
	}
}

// WithVersion sets the server version
func WithVersion(version string) Option {
	return func(cfg *handlerConfig) error {
		if version == "" {
			return ErrEmptyVersion
		}
		cfg.version = version
		return nil
	}
}

// WithLogger sets the logger used for call logging
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *handlerConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// WithServer allows injecting a custom server for testing
func WithServer(server *mcp.Server) Option {
	return func(cfg *handlerConfig) error {
		if server == nil {
			return ErrNilServer
		}
		cfg.server = server
		return nil
	}
}

// WithTool adds a type-safe tool. Input and output schemas are generated from
// TIn and TOut unless set with WithInputSchema or WithOutputSchema.
func WithTool[TIn, TOut any](name, description string, fn ToolFunc[TIn, TOut], opts ...ToolOption) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyToolName
		}
		if fn == nil {
			return ErrNilFunction
		}

		tool := &mcp.Tool{
			Name:        name,
			Description: description,
		}
		for _, opt := range opts {
			if err := opt(tool); err != nil {
				return err
			}
		}

		cfg.tools = append(cfg.tools, toolRegistration{
			name: name,
			register: func(server *mcp.Server) {
				mcp.AddTool(server, tool, createTypedHandler(fn))
			},
		})

		return nil
	}
}

// WithTextTools registers process_text with explicit input and output schemas
func WithTextTools() Option {
	return func(cfg *handlerConfig) error {
		outputSchema, err := textRecordSchema()
		if err != nil {
			return err
		}

		return WithTool(
			ProcessTextToolName,
			ProcessTextToolDescription,
			processText,
			WithTitle("Process text"),
			WithInputSchema(textInputSchema()),
			WithOutputSchema(outputSchema),
		)(cfg)
	}
}

// WithTitle sets the human readable tool title
func WithTitle(title string) ToolOption {
	return func(tool *mcp.Tool) error {
		tool.Title = title
		return nil
	}
}

// WithInputSchema overrides the generated input schema
func WithInputSchema(schema *jsonschema.Schema) ToolOption {
	return func(tool *mcp.Tool) error {
		if schema == nil {
			return ErrNilSchema
		}
		tool.InputSchema = schema
		return nil
	}
}

// WithOutputSchema overrides the generated output schema
func WithOutputSchema(schema *jsonschema.Schema) ToolOption {
	return func(tool *mcp.Tool) error {
		if schema == nil {
			return ErrNilSchema
		}
		tool.OutputSchema = schema
		return nil
	}
}
