package tools

import (
	"github.com/nbtools/nbscan/internal/collections"
	"github.com/nbtools/nbscan/internal/errors"
)

// Registry tracks the tools registered with the MCP server.
type Registry struct {
	tools *collections.SyncMap[string, *ServerTool]
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: collections.NewSyncMap[string, *ServerTool](),
	}
}

// Add registers a tool. Names must be unique and non-empty.
func (r *Registry) Add(tool *ServerTool) error {
	if tool == nil || tool.Tool == nil {
		return errors.New("tool cannot be nil")
	}
	if tool.Tool.Name == "" {
		return errors.New("tool name cannot be empty")
	}
	if _, exists := r.tools.Get(tool.Tool.Name); exists {
		return errors.New("tool %s is already registered", tool.Tool.Name)
	}

	r.tools.Set(tool.Tool.Name, tool)
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (*ServerTool, bool) {
	return r.tools.Get(name)
}

// List returns all registered tool names in sorted order.
func (r *Registry) List() []string {
	return collections.SortedKeys(r.tools)
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return r.tools.Len()
}

// Validate checks that every registered tool is fully configured.
func (r *Registry) Validate() error {
	var err error
	r.tools.Range(func(name string, tool *ServerTool) bool {
		switch {
		case tool.Tool.Name != name:
			err = errors.New("tool name mismatch: registered as %s but reports name %s", name, tool.Tool.Name)
		case tool.Tool.Description == "":
			err = errors.New("tool %s has empty description", name)
		case tool.RegisterFunc == nil:
			err = errors.New("tool %s has nil register function", name)
		}
		return err == nil
	})
	return err
}
