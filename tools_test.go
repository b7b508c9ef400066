package textmcp

import (
	"context"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type EchoInput struct {
	Text string `json:"text" jsonschema:"Text to echo"`
}

type EchoOutput struct {
	Message string `json:"message" jsonschema:"Echoed message"`
}

func echoFunc(ctx context.Context, input EchoInput) (EchoOutput, error) {
	return EchoOutput{Message: input.Text}, nil
}

func TestHandlerConstruction(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name: "basic handler",
			opts: nil,
		},
		{
			name: "with name, version and logger",
			opts: []Option{WithName("test-server"), WithVersion("1.2.3"), WithLogger(slog.Default())},
		},
		{
			name: "with text tools",
			opts: []Option{WithTextTools()},
		},
		{
			name:    "empty name error",
			opts:    []Option{WithName("")},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty version error",
			opts:    []Option{WithVersion("")},
			wantErr: ErrEmptyVersion,
		},
		{
			name:    "nil server error",
			opts:    []Option{WithServer(nil)},
			wantErr: ErrNilServer,
		},
		{
			name:    "nil logger error",
			opts:    []Option{WithLogger(nil)},
			wantErr: ErrNilLogger,
		},
		{
			name:    "duplicate tool error",
			opts:    []Option{WithTextTools(), WithTool(ProcessTextToolName, "again", echoFunc)},
			wantErr: ErrDuplicateTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := New(tt.opts...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handler)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, handler)
			assert.NotNil(t, handler.server)
		})
	}
}

func TestWithTool(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{
			name: "valid tool",
			opt:  WithTool("echo", "Echo input text", echoFunc),
		},
		{
			name:    "empty tool name error",
			opt:     WithTool("", "description", echoFunc),
			wantErr: ErrEmptyToolName,
		},
		{
			name:    "nil function error",
			opt:     WithTool[EchoInput, EchoOutput]("echo", "description", nil),
			wantErr: ErrNilFunction,
		},
		{
			name:    "nil input schema error",
			opt:     WithTool("echo", "description", echoFunc, WithInputSchema(nil)),
			wantErr: ErrNilSchema,
		},
		{
			name:    "nil output schema error",
			opt:     WithTool("echo", "description", echoFunc, WithOutputSchema(nil)),
			wantErr: ErrNilSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestToolRegistration(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-server",
		Version: "1.0.0",
	}, nil)

	handler, err := New(
		WithServer(server),
		WithTextTools(),
		WithTool("echo", "Echo text", echoFunc),
	)

	require.NoError(t, err)
	assert.Equal(t, server, handler.GetServer())
	assert.Equal(t, []string{ProcessTextToolName, "echo"}, handler.Tools())
}

func TestToolsReturnsCopy(t *testing.T) {
	handler, err := New(WithTextTools())
	require.NoError(t, err)

	tools := handler.Tools()
	tools[0] = "changed"
	assert.Equal(t, []string{ProcessTextToolName}, handler.Tools())
}
