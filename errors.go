package textmcp

import (
	"errors"
	"fmt"
)

// Error codes attached to tool errors
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeProcessing   = "PROCESSING_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
)

// ToolError represents a tool execution error that should be returned to the client
// as part of the CallToolResult with IsError: true. This allows LLMs to see the error
// and potentially retry or self-correct.
type ToolError struct {
	Message string
	Code    string // Optional error code for categorization
	Err     error  // Optional underlying cause
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a new tool error with the given message
func NewToolError(message string) *ToolError {
	return &ToolError{Message: message}
}

// NewToolErrorWithCode creates a new tool error with message and code
func NewToolErrorWithCode(message, code string) *ToolError {
	return &ToolError{Message: message, Code: code}
}

// ValidationError is a convenience function for creating validation tool errors
func ValidationError(message string) *ToolError {
	return &ToolError{Message: message, Code: CodeValidation}
}

// ProcessingError is a convenience function for creating processing tool errors
func ProcessingError(message string) *ToolError {
	return &ToolError{Message: message, Code: CodeProcessing}
}

// InvalidInputError reports input that is not well-formed text.
// The returned error matches ErrInvalidInput with errors.Is.
func InvalidInputError(message string) *ToolError {
	return &ToolError{Message: message, Code: CodeInvalidInput, Err: ErrInvalidInput}
}

// Sentinel errors for configuration validation
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyVersion  = errors.New("version cannot be empty")
	ErrEmptyToolName = errors.New("tool name cannot be empty")
	ErrNilSchema     = errors.New("schema cannot be nil")
	ErrNilFunction   = errors.New("function cannot be nil")
	ErrNilServer     = errors.New("server cannot be nil")
	ErrNilLogger     = errors.New("logger cannot be nil")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrInvalidInput  = errors.New("invalid input")
)
