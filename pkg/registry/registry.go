package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/textops/pkg/domain"
)

// ToolFunction defines the signature for a tool implementation.
// It receives a context and a map of arguments, and returns a result or error.
type ToolFunction func(ctx context.Context, args map[string]any) (any, error)

type entry struct {
	tool domain.Tool
	fn   ToolFunction
}

// Registry manages the available tools.
// Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]entry),
	}
}

// Register adds a tool to the registry without metadata.
// If a tool with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn ToolFunction) {
	_ = r.RegisterTool(domain.Tool{Name: name}, fn)
}

// RegisterTool adds a tool and its metadata to the registry.
// If a tool with the same name exists, it is overwritten.
func (r *Registry) RegisterTool(tool domain.Tool, fn ToolFunction) error {
	if strings.TrimSpace(tool.Name) == "" || fn == nil {
		return domain.NewInvalidToolNameError(tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = entry{tool: tool, fn: fn}
	return nil
}

// Has reports whether a tool is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tools returns the metadata of all registered tools, sorted by name.
func (r *Registry) Tools() []domain.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]domain.Tool, 0, len(r.tools))
	for _, e := range r.tools {
		tools = append(tools, e.tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// Execute looks up a tool by name and executes it.
// Returns a domain.ErrCodeOperationNotFound error if the tool is not found.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	e, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.NewOperationNotFoundError(name)
	}

	return e.fn(ctx, args)
}
