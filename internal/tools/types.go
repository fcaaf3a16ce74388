// Package tools provides the tool registry and common types for MCP tools.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerTool bundles an MCP tool schema with its registration function.
// The RegisterFunc indirection keeps the typed mcp.AddTool call next to the
// handler that knows the argument type.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}

// Context contains common dependencies needed by tools.
type Context struct {
	Logger    Logger
	Validator Validator
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
}

// Validator defines the security validation interface.
type Validator interface {
	ValidatePath(path string) error
	SanitizePath(path string) (string, error)
}
