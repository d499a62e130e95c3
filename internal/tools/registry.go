// In file: internal/tools/registry.go
package tools

import (
	"context"
	"fmt"
	"sort"
)

// Registry is the name-keyed lookup table the agent loop queries.
// It is filled at startup and only read afterwards.
type Registry struct {
	tools map[string]ToolExecutor
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds tool under its declared function name, replacing any tool
// already registered with that name.
func (r *Registry) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	r.tools[name] = tool
}

// Lookup returns the tool registered as name.
func (r *Registry) Lookup(name string) (ToolExecutor, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Definitions returns every registered tool's schema, sorted by name.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Function.Name < defs[j].Function.Name
	})
	return defs
}

// Names lists the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name, arguments string) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("tool '%s' not found", name)
	}
	return tool.Execute(ctx, arguments)
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.tools)
}
